package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/docsearch"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	return runSearch(deps, c.Docset, strings.Join(c.Term, " "), c.Limit)
}

// runSearch prints up to limit results. A failed search is reported as an
// error, distinct from a search that matched nothing.
func runSearch(deps *Dependencies, key, term string, limit int) error {
	results, err := deps.Searcher.Search(deps.Ctx, key, term)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		if docsearch.ErrorCode(err) == docsearch.ECACHEMISS {
			fmt.Fprintf(deps.Stderr, "Hint: run 'docsearch index %s' first\n", key)
		}
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results matching your criteria.")
		return nil
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	printResults(deps.Stdout, results)
	return nil
}

func printResults(w io.Writer, results []*docsearch.Result) {
	for _, r := range results {
		fmt.Fprintln(w, r.Title)
		if r.Category != "" {
			fmt.Fprintf(w, "    %s\n", r.Category)
		}
		fmt.Fprintf(w, "    %s\n", r.URL)
	}
}
