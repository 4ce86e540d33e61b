// Package mapper converts raw hosted-search hits into docsearch.Result values.
// Each backend response shape gets its own Mapper; DefaultMapper handles the
// common DocSearch hierarchy shape.
package mapper

import "github.com/fwojciec/docsearch"

var _ docsearch.MapperRegistry = (*Registry)(nil)

// Registry holds docset-specific mappers in registration order and falls
// back to a default mapper when none matches.
type Registry struct {
	mappers  []docsearch.Mapper
	fallback docsearch.Mapper
}

// NewRegistry creates a Registry with every built-in mapper registered and
// DefaultMapper as fallback.
func NewRegistry() *Registry {
	r := NewEmptyRegistry(NewDefaultMapper())
	r.Register(NewVercelMapper())
	r.Register(NewTerraformMapper())
	r.Register(NewPrismaMapper())
	r.Register(NewWebDevMapper())
	r.Register(NewGitHubMapper())
	return r
}

// NewEmptyRegistry creates a Registry with no mappers and the given fallback.
func NewEmptyRegistry(fallback docsearch.Mapper) *Registry {
	return &Registry{fallback: fallback}
}

// Register appends a mapper. Earlier registrations win when types collide.
func (r *Registry) Register(m docsearch.Mapper) {
	r.mappers = append(r.mappers, m)
}

// Get returns the first mapper whose type equals key, or the fallback.
func (r *Registry) Get(key string) docsearch.Mapper {
	for _, m := range r.mappers {
		if m.Type() == key {
			return m
		}
	}
	return r.fallback
}

// List returns the types of all registered mappers in order.
func (r *Registry) List() []string {
	types := make([]string, 0, len(r.mappers))
	for _, m := range r.mappers {
		types = append(types, m.Type())
	}
	return types
}
