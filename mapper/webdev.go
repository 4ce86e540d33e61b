package mapper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsearch"
)

// WebDevMapper maps hits from the web.dev index, where the only usable title
// is the highlighted one and still carries HTML markup.
type WebDevMapper struct{}

// NewWebDevMapper creates a new WebDevMapper.
func NewWebDevMapper() *WebDevMapper {
	return &WebDevMapper{}
}

// Type returns the mapper's identifier.
func (m *WebDevMapper) Type() string {
	return "webdev"
}

// Map converts a web.dev hit. The result URL doubles as category.
func (m *WebDevMapper) Map(docset *docsearch.Docset, hit docsearch.Hit) (*docsearch.Result, error) {
	highlighted := hit.Object("_highlightResult").Object("title").String("value")
	title, err := StripHTML(highlighted)
	if err != nil {
		return nil, err
	}

	var url string
	if path := hit.String("url"); path != "" {
		url = docset.URL + path
	}

	r := &docsearch.Result{
		URL:      url,
		Title:    title,
		Icon:     docset.Icon,
		Category: url,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// StripHTML returns the text content of an HTML fragment, with tags removed
// and entities decoded.
func StripHTML(fragment string) (string, error) {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", docsearch.Errorf(docsearch.EMALFORMED, "failed to parse HTML: %v", err)
	}
	return strings.TrimSpace(doc.Text()), nil
}
