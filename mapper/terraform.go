package mapper

import (
	"strings"

	"github.com/fwojciec/docsearch"
)

// TerraformMapper maps hits from the Terraform registry documentation index,
// which stores a page title, a headings array, and the page path as object ID.
type TerraformMapper struct{}

// NewTerraformMapper creates a new TerraformMapper.
func NewTerraformMapper() *TerraformMapper {
	return &TerraformMapper{}
}

// Type returns the mapper's identifier.
func (m *TerraformMapper) Type() string {
	return "terraform"
}

// Map converts a Terraform hit.
func (m *TerraformMapper) Map(docset *docsearch.Docset, hit docsearch.Hit) (*docsearch.Result, error) {
	var url string
	if id := hit.String("objectID"); id != "" {
		url = docsearch.JoinURL(docset.URL, id)
	}

	r := &docsearch.Result{
		URL:      url,
		Title:    hit.String("page_title"),
		Icon:     docset.Icon,
		Category: strings.Join(hit.Strings("headings"), CategorySeparator),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
