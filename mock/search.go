package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.Mapper = (*Mapper)(nil)

// Mapper is a mock implementation of docsearch.Mapper.
type Mapper struct {
	TypeFn func() string
	MapFn  func(docset *docsearch.Docset, hit docsearch.Hit) (*docsearch.Result, error)
}

func (m *Mapper) Type() string {
	return m.TypeFn()
}

func (m *Mapper) Map(docset *docsearch.Docset, hit docsearch.Hit) (*docsearch.Result, error) {
	return m.MapFn(docset, hit)
}

var _ docsearch.MapperRegistry = (*MapperRegistry)(nil)

// MapperRegistry is a mock implementation of docsearch.MapperRegistry.
type MapperRegistry struct {
	GetFn func(key string) docsearch.Mapper
}

func (r *MapperRegistry) Get(key string) docsearch.Mapper {
	return r.GetFn(key)
}

var _ docsearch.Provider = (*Provider)(nil)

// Provider is a mock implementation of docsearch.Provider.
type Provider struct {
	NameFn   func() docsearch.ProviderType
	SearchFn func(ctx context.Context, key string, docset *docsearch.Docset, term string) ([]*docsearch.Result, error)
}

func (p *Provider) Name() docsearch.ProviderType {
	return p.NameFn()
}

func (p *Provider) Search(ctx context.Context, key string, docset *docsearch.Docset, term string) ([]*docsearch.Result, error) {
	return p.SearchFn(ctx, key, docset, term)
}

var _ docsearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of docsearch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, key string, term string) ([]*docsearch.Result, error)
}

func (s *Searcher) Search(ctx context.Context, key string, term string) ([]*docsearch.Result, error) {
	return s.SearchFn(ctx, key, term)
}
