package mapper

import "github.com/fwojciec/docsearch"

// GitHubMapper maps hits from the GitHub Docs index, which stores a flat
// heading and a preformatted breadcrumbs string.
type GitHubMapper struct{}

// NewGitHubMapper creates a new GitHubMapper.
func NewGitHubMapper() *GitHubMapper {
	return &GitHubMapper{}
}

// Type returns the mapper's identifier.
func (m *GitHubMapper) Type() string {
	return "github"
}

// Map converts a GitHub Docs hit. Its URL is absolute.
func (m *GitHubMapper) Map(docset *docsearch.Docset, hit docsearch.Hit) (*docsearch.Result, error) {
	r := &docsearch.Result{
		URL:      hit.String("url"),
		Title:    hit.String("heading"),
		Icon:     docset.Icon,
		Category: hit.String("breadcrumbs"),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
