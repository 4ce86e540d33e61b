package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/docsearch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	printDocsets(deps.Stdout, deps.Docsets.ListDocsets(c.Filter), 0)
	return nil
}

// printDocsets writes one line per docset, at most limit lines when limit
// is positive.
func printDocsets(w io.Writer, docsets []docsearch.DocsetSummary, limit int) {
	if len(docsets) == 0 {
		fmt.Fprintln(w, "No docsets found matching your criteria.")
		return
	}
	if limit > 0 && len(docsets) > limit {
		docsets = docsets[:limit]
	}
	for _, d := range docsets {
		fmt.Fprintf(w, "%s  %s  %s\n", d.Key, d.Name, d.Description)
	}
}
