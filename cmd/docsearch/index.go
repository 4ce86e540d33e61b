package main

import (
	"fmt"

	"github.com/fwojciec/docsearch"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	cycle := deps.Refresher.RunOnce(deps.Ctx, c.Docsets...)

	for _, key := range cycle.Indexed {
		fmt.Fprintf(deps.Stdout, "Indexed %s\n", key)
	}
	for _, f := range cycle.Failures {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", f.Key, docsearch.ErrorMessage(f.Err))
	}

	if n := cycle.Failed(); n > 0 {
		return fmt.Errorf("%d of %d docsets failed to index", n, n+len(cycle.Indexed))
	}
	if len(cycle.Indexed) == 0 {
		fmt.Fprintln(deps.Stdout, "No local-index docsets to build.")
	}
	return nil
}
