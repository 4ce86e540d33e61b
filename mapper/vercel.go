package mapper

import "github.com/fwojciec/docsearch"

// VercelMapper maps hits from the Vercel documentation index, which stores
// a flat title, a section name, and a site-relative URL.
type VercelMapper struct{}

// NewVercelMapper creates a new VercelMapper.
func NewVercelMapper() *VercelMapper {
	return &VercelMapper{}
}

// Type returns the mapper's identifier.
func (m *VercelMapper) Type() string {
	return "vercel"
}

// Map converts a Vercel hit.
func (m *VercelMapper) Map(docset *docsearch.Docset, hit docsearch.Hit) (*docsearch.Result, error) {
	r := &docsearch.Result{
		URL:      docset.URL + hit.String("url"),
		Title:    hit.String("title"),
		Icon:     docset.Icon,
		Category: hit.String("section"),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
