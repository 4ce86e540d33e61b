package main

import (
	"fmt"
	"strings"
)

// Run executes the query command. When the first word names a docset the
// rest is searched in it, otherwise the whole input filters the docset list.
func (c *QueryCmd) Run(deps *Dependencies) error {
	words := strings.Fields(strings.Join(c.Input, " "))

	if len(words) > 0 && deps.Docsets.HasDocset(words[0]) {
		key := words[0]
		term := strings.Join(words[1:], " ")
		if len([]rune(term)) < MinTermLength {
			fmt.Fprintf(deps.Stdout, "Please keep typing... (searching %s documentation)\n", key)
			return nil
		}
		return runSearch(deps, key, term, DefaultLimit)
	}

	printDocsets(deps.Stdout, deps.Docsets.ListDocsets(strings.Join(words, " ")), DefaultLimit)
	return nil
}
