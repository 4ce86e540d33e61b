package mkdocs

import (
	"context"
	"strings"

	"github.com/fwojciec/docsearch"
)

// Ensure Provider implements docsearch.Provider at compile time.
var _ docsearch.Provider = (*Provider)(nil)

// Provider searches locally cached indexes by title.
type Provider struct {
	reader docsearch.IndexReader
}

// NewProvider creates a new Provider reading indexes from reader.
func NewProvider(reader docsearch.IndexReader) *Provider {
	return &Provider{reader: reader}
}

// Name returns the provider type.
func (p *Provider) Name() docsearch.ProviderType {
	return docsearch.ProviderLocalIndex
}

// Search returns records whose title contains term, ignoring case, in
// index order. Returns ECACHEMISS if the docset has not been indexed yet.
func (p *Provider) Search(ctx context.Context, key string, docset *docsearch.Docset, term string) ([]*docsearch.Result, error) {
	records, err := p.reader.ReadIndex(key)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	results := make([]*docsearch.Result, 0)
	for _, rec := range records {
		if rec == nil || rec.Title == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(rec.Title), term) {
			continue
		}

		r := &docsearch.Result{
			URL:      docsearch.JoinURL(docset.URL, rec.Description),
			Title:    rec.Title,
			Icon:     docset.Icon,
			Category: rec.Description,
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
