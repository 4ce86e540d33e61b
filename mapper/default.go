package mapper

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fwojciec/docsearch"
)

// CategorySeparator joins breadcrumb levels into a category.
const CategorySeparator = " -> "

// DefaultMapper maps the common DocSearch hit shape, where the page
// breadcrumb is stored in a "hierarchy" object with lvl0..lvl6 keys.
type DefaultMapper struct{}

// NewDefaultMapper creates a new DefaultMapper.
func NewDefaultMapper() *DefaultMapper {
	return &DefaultMapper{}
}

// Type returns the mapper's identifier.
func (m *DefaultMapper) Type() string {
	return "default"
}

// Map uses the deepest non-empty hierarchy level as title and joins the
// levels above it into the category. A hit without any hierarchy level is
// titled by its URL.
func (m *DefaultMapper) Map(docset *docsearch.Docset, hit docsearch.Hit) (*docsearch.Result, error) {
	url := hit.String("url")
	title, category := TitleAndCategory(HierarchyLevels(hit))
	if title == "" {
		title = url
	}

	r := &docsearch.Result{
		URL:      url,
		Title:    title,
		Icon:     docset.Icon,
		Category: category,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// TitleAndCategory drops empty levels, then returns the last level as title
// and the preceding levels joined by CategorySeparator as category.
func TitleAndCategory(levels []string) (title, category string) {
	nonEmpty := make([]string, 0, len(levels))
	for _, l := range levels {
		if l != "" {
			nonEmpty = append(nonEmpty, l)
		}
	}

	switch len(nonEmpty) {
	case 0:
		return "", ""
	case 1:
		return nonEmpty[0], ""
	}
	last := len(nonEmpty) - 1
	return nonEmpty[last], strings.Join(nonEmpty[:last], CategorySeparator)
}

// HierarchyLevels returns the hierarchy of a hit in level order. The
// hierarchy may be an object keyed lvl0, lvl1, ... or a plain array.
func HierarchyLevels(hit docsearch.Hit) []string {
	if levels := hit.Strings("hierarchy"); levels != nil {
		return levels
	}

	h := hit.Object("hierarchy")
	if h == nil {
		return nil
	}

	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := levelIndex(keys[i]), levelIndex(keys[j])
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})

	levels := make([]string, 0, len(keys))
	for _, k := range keys {
		levels = append(levels, h.String(k))
	}
	return levels
}

// levelIndex returns N for a "lvlN" key; other keys sort last.
func levelIndex(key string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(key, "lvl"))
	if err != nil || !strings.HasPrefix(key, "lvl") {
		return int(^uint(0) >> 1)
	}
	return n
}
