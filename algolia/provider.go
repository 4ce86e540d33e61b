package algolia

import (
	"context"

	"github.com/fwojciec/docsearch"
)

// Ensure Provider implements docsearch.Provider at compile time.
var _ docsearch.Provider = (*Provider)(nil)

// Provider serves hosted-search docsets by querying their Algolia index and
// mapping each hit through the docset's mapper.
type Provider struct {
	client  *Client
	mappers docsearch.MapperRegistry
}

// NewProvider creates a new Provider.
func NewProvider(client *Client, mappers docsearch.MapperRegistry) *Provider {
	return &Provider{client: client, mappers: mappers}
}

// Name returns the provider type.
func (p *Provider) Name() docsearch.ProviderType {
	return docsearch.ProviderHostedSearch
}

// Search queries the docset's index. Hits are mapped in backend order.
// An empty hit list yields an empty result list. An incomplete docset
// returns ECONFIG without contacting the backend.
func (p *Provider) Search(ctx context.Context, key string, docset *docsearch.Docset, term string) ([]*docsearch.Result, error) {
	if err := docset.Validate(); err != nil {
		return nil, err
	}

	resp, err := p.client.Search(ctx, Query{
		ApplicationID: docset.ApplicationID,
		APIKey:        docset.APIKey,
		IndexName:     docset.IndexName,
		Term:          term,
		Options:       BuildRequestOptions(docset),
	})
	if err != nil {
		return nil, err
	}

	results := make([]*docsearch.Result, 0, len(resp.Hits))
	if len(resp.Hits) == 0 {
		return results, nil
	}

	mapper := p.mappers.Get(key)
	for _, hit := range resp.Hits {
		r, err := mapper.Map(docset, hit)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// BuildRequestOptions derives per-request search options from a docset.
func BuildRequestOptions(docset *docsearch.Docset) RequestOptions {
	var opts RequestOptions
	if len(docset.FacetFilters) > 0 {
		opts.FacetFilters = docset.FacetFilters
	}
	return opts
}
