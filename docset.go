package docsearch

// ProviderType identifies the search backend a docset is served by.
type ProviderType string

// Supported providers.
const (
	ProviderHostedSearch ProviderType = "hosted-search"
	ProviderLocalIndex   ProviderType = "local-index"
)

// Valid reports whether p is one of the known providers.
func (p ProviderType) Valid() bool {
	switch p {
	case ProviderHostedSearch, ProviderLocalIndex:
		return true
	}
	return false
}

// Docset describes one documentation source and how to search it.
type Docset struct {
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	URL         string       `json:"url"`
	Provider    ProviderType `json:"provider"`

	// Hosted search.
	ApplicationID string `json:"application_id,omitempty"`
	APIKey        string `json:"api_key,omitempty"`
	IndexName     string `json:"index_name,omitempty"`

	// FacetFilters is forwarded verbatim to the hosted backend. Elements are
	// filter strings or nested string arrays (OR groups).
	FacetFilters []any `json:"facet_filters,omitempty"`

	// Local index.
	SearchIndexURL string `json:"search_index_url,omitempty"`
}

// Validate returns an error if the docset is missing fields its provider needs.
func (d *Docset) Validate() error {
	switch d.Provider {
	case "":
		return Errorf(ECONFIG, "docset %q is missing provider option", d.Key)
	case ProviderHostedSearch:
		if d.ApplicationID == "" || d.APIKey == "" || d.IndexName == "" {
			return Errorf(ECONFIG, "docset %q requires application_id, api_key and index_name", d.Key)
		}
	case ProviderLocalIndex:
		if d.SearchIndexURL == "" {
			return Errorf(ECONFIG, "docset %q requires search_index_url", d.Key)
		}
	default:
		return Errorf(ECONFIG, "docset %q has unknown provider %q", d.Key, d.Provider)
	}
	return nil
}

// Summary returns the listing view of the docset.
func (d *Docset) Summary() DocsetSummary {
	return DocsetSummary{
		Key:         d.Key,
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		URL:         d.URL,
	}
}

// DocsetSummary is the listing view of a docset.
type DocsetSummary struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	URL         string `json:"url"`
}

// DocsetService provides read access to the configured docsets.
type DocsetService interface {
	// ListDocsets returns all docsets in registry order. A non-empty filter
	// keeps only docsets whose name contains it, ignoring case.
	ListDocsets(filter string) []DocsetSummary

	// HasDocset reports whether a docset with the exact key exists.
	HasDocset(key string) bool

	// FindDocset returns the docset with the exact key.
	// The boolean is false if no such docset exists.
	FindDocset(key string) (*Docset, bool)

	// DocsetsByProvider returns all docsets served by the given provider.
	DocsetsByProvider(provider ProviderType) []*Docset
}
