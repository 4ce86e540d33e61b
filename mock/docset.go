package mock

import "github.com/fwojciec/docsearch"

var _ docsearch.DocsetService = (*DocsetService)(nil)

// DocsetService is a mock implementation of docsearch.DocsetService.
type DocsetService struct {
	ListDocsetsFn       func(filter string) []docsearch.DocsetSummary
	HasDocsetFn         func(key string) bool
	FindDocsetFn        func(key string) (*docsearch.Docset, bool)
	DocsetsByProviderFn func(provider docsearch.ProviderType) []*docsearch.Docset
}

func (s *DocsetService) ListDocsets(filter string) []docsearch.DocsetSummary {
	return s.ListDocsetsFn(filter)
}

func (s *DocsetService) HasDocset(key string) bool {
	return s.HasDocsetFn(key)
}

func (s *DocsetService) FindDocset(key string) (*docsearch.Docset, bool) {
	return s.FindDocsetFn(key)
}

func (s *DocsetService) DocsetsByProvider(provider docsearch.ProviderType) []*docsearch.Docset {
	return s.DocsetsByProviderFn(provider)
}
