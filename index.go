package docsearch

import (
	"context"
	"strings"
	"unicode/utf8"
)

// TextBudget is the maximum length, in characters, of IndexRecord.Text.
const TextBudget = 60

// Ellipsis marks text shortened by Truncate.
const Ellipsis = "…"

// IndexRecord is one entry of a locally cached search index.
type IndexRecord struct {
	Title string `json:"title"`

	// Description holds the page location. It is appended to the docset URL
	// to build result links and doubles as the result category.
	Description string `json:"description"`

	// Text is a short excerpt of the page. Stored but not surfaced in results.
	Text string `json:"text"`
}

// IndexReader reads cached local indexes.
type IndexReader interface {
	// ReadIndex returns the records cached for the docset, in build order.
	// Returns ECACHEMISS if no index has been built for the docset yet and
	// EMALFORMED if the cached file cannot be decoded.
	ReadIndex(key string) ([]*IndexRecord, error)
}

// IndexWriter persists local indexes.
type IndexWriter interface {
	// WriteIndex replaces the cached index for the docset. Readers observe
	// either the previous or the new index, never a partial write.
	WriteIndex(key string, records []*IndexRecord) error
}

// Indexer builds the local index of a docset.
type Indexer interface {
	// Index rebuilds the cached index for the docset identified by key.
	Index(ctx context.Context, key string, docset *Docset) error
}

// Truncate trims surrounding whitespace from s and shortens it to at most
// limit characters. Shortened text ends with Ellipsis, which counts
// towards the limit.
func Truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= 0 {
		return ""
	}

	runes := []rune(s)
	return string(runes[:limit-1]) + Ellipsis
}
