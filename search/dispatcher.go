// Package search routes queries to the provider serving each docset.
package search

import (
	"context"

	"github.com/fwojciec/docsearch"
)

// Ensure Dispatcher implements docsearch.Searcher at compile time.
var _ docsearch.Searcher = (*Dispatcher)(nil)

// Dispatcher resolves a docset and delegates the query to the provider its
// descriptor names. It adds no retries and does not transform results.
type Dispatcher struct {
	docsets   docsearch.DocsetService
	providers map[docsearch.ProviderType]docsearch.Provider
}

// NewDispatcher creates a Dispatcher over the given providers. A later
// provider with the same name replaces an earlier one.
func NewDispatcher(docsets docsearch.DocsetService, providers ...docsearch.Provider) *Dispatcher {
	d := &Dispatcher{
		docsets:   docsets,
		providers: make(map[docsearch.ProviderType]docsearch.Provider, len(providers)),
	}
	for _, p := range providers {
		d.providers[p.Name()] = p
	}
	return d
}

// Search returns normalized results for term in the docset identified by key.
func (d *Dispatcher) Search(ctx context.Context, key string, term string) ([]*docsearch.Result, error) {
	docset, ok := d.docsets.FindDocset(key)
	if !ok {
		return nil, docsearch.Errorf(docsearch.ECONFIG, "unknown docset %q", key)
	}
	if docset.Provider == "" {
		return nil, docsearch.Errorf(docsearch.ECONFIG, "missing provider for docset %q", key)
	}

	provider, ok := d.providers[docset.Provider]
	if !ok {
		return nil, docsearch.Errorf(docsearch.ECONFIG, "unknown provider %q for docset %q", docset.Provider, key)
	}
	if err := docset.Validate(); err != nil {
		return nil, err
	}

	return provider.Search(ctx, key, docset, term)
}
