package mapper

import "github.com/fwojciec/docsearch"

// PrismaMapper maps hits from the Prisma documentation index, which stores
// title, content, and a slug relative to the docset URL.
type PrismaMapper struct{}

// NewPrismaMapper creates a new PrismaMapper.
func NewPrismaMapper() *PrismaMapper {
	return &PrismaMapper{}
}

// Type returns the mapper's identifier.
func (m *PrismaMapper) Type() string {
	return "prisma"
}

// Map converts a Prisma hit. The content snippet becomes the category.
func (m *PrismaMapper) Map(docset *docsearch.Docset, hit docsearch.Hit) (*docsearch.Result, error) {
	r := &docsearch.Result{
		URL:      docset.URL + hit.String("slug"),
		Title:    hit.String("title"),
		Icon:     docset.Icon,
		Category: hit.String("content"),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
