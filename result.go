package docsearch

import (
	"context"
	"fmt"
	"strings"
)

// Result is a normalized search result. It is the only shape callers see.
type Result struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// Validate returns an error if a required field is empty.
// Category may be empty.
func (r *Result) Validate() error {
	if r.URL == "" {
		return Errorf(EMALFORMED, "result url required")
	}
	if r.Title == "" {
		return Errorf(EMALFORMED, "result title required")
	}
	if r.Icon == "" {
		return Errorf(EMALFORMED, "result icon required")
	}
	return nil
}

// Hit is a raw search hit as returned by a backend. Its shape depends on the
// docset and is only interpreted by the matching Mapper.
type Hit map[string]any

// String returns the field as a string. Missing and null fields yield "";
// numbers and booleans are formatted.
func (h Hit) String(field string) string {
	return stringify(h[field])
}

// Strings returns the field as a list of strings. A single string value
// yields a one-element list.
func (h Hit) Strings(field string) []string {
	switch v := h[field].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringify(item))
		}
		return out
	case []string:
		return v
	case string:
		return []string{v}
	}
	return nil
}

// Object returns the field as a nested hit, or nil.
func (h Hit) Object(field string) Hit {
	switch v := h[field].(type) {
	case map[string]any:
		return Hit(v)
	case Hit:
		return v
	}
	return nil
}

func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Mapper converts a raw hit from one family of backends into a Result.
type Mapper interface {
	// Type returns the identifier the mapper is selected by.
	// For docset-specific mappers this is the docset key.
	Type() string

	// Map converts a raw hit. Returns EMALFORMED if the hit cannot
	// produce a URL and title.
	Map(docset *Docset, hit Hit) (*Result, error)
}

// MapperRegistry selects the Mapper for a docset.
type MapperRegistry interface {
	// Get returns the first registered mapper whose type equals key,
	// or the default mapper if none matches.
	Get(key string) Mapper
}

// Provider executes queries against one kind of search backend.
type Provider interface {
	// Name returns the provider type this implementation serves.
	Name() ProviderType

	// Search queries the backend for the docset identified by key.
	// An empty result list means nothing matched; failures are errors.
	Search(ctx context.Context, key string, docset *Docset, term string) ([]*Result, error)
}

// Searcher routes a query to the provider of a docset.
type Searcher interface {
	// Search returns normalized results for term in the docset identified by key.
	// Returns ECONFIG if the docset is unknown or has no usable provider.
	Search(ctx context.Context, key string, term string) ([]*Result, error)
}

// JoinURL joins a base URL and a path suffix with exactly one slash.
func JoinURL(base, suffix string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(suffix, "/")
}
