// Package mkdocs builds and searches local indexes of documentation sites
// that publish an MkDocs search_index.json.
package mkdocs

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/docsearch"
)

// Ensure Indexer implements docsearch.Indexer at compile time.
var _ docsearch.Indexer = (*Indexer)(nil)

// Indexer downloads a site's published search index and stores it as
// compact local records.
type Indexer struct {
	fetcher docsearch.Fetcher
	writer  docsearch.IndexWriter
}

// NewIndexer creates a new Indexer.
func NewIndexer(fetcher docsearch.Fetcher, writer docsearch.IndexWriter) *Indexer {
	return &Indexer{fetcher: fetcher, writer: writer}
}

// Index rebuilds the local index of a docset, replacing any previous one.
// A document without a "docs" array is treated as nothing to index and
// leaves the existing index untouched.
func (i *Indexer) Index(ctx context.Context, key string, docset *docsearch.Docset) error {
	if docset.SearchIndexURL == "" {
		return docsearch.Errorf(docsearch.ECONFIG, "docset %q requires search_index_url", key)
	}

	data, err := i.fetcher.Fetch(ctx, docset.SearchIndexURL)
	if err != nil {
		return err
	}

	records, ok, err := ParseSearchIndex(data)
	if err != nil {
		return docsearch.Errorf(docsearch.EMALFORMED, "invalid search index for docset %q: %v", key, docsearch.ErrorMessage(err))
	}
	if !ok {
		return nil
	}

	// A caller that gave up must not have its docset overwritten later.
	if err := ctx.Err(); err != nil {
		return docsearch.Errorf(docsearch.EFETCH, "indexing docset %q: %v", key, err)
	}
	return i.writer.WriteIndex(key, records)
}

// ParseSearchIndex converts an MkDocs search index document into local
// records. The boolean is false when the document has no "docs" array.
func ParseSearchIndex(data []byte) ([]*docsearch.IndexRecord, bool, error) {
	var top any
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, false, docsearch.Errorf(docsearch.EMALFORMED, "%v", err)
	}

	obj, ok := top.(map[string]any)
	if !ok {
		return nil, false, nil
	}
	docs, ok := obj["docs"].([]any)
	if !ok {
		return nil, false, nil
	}

	records := make([]*docsearch.IndexRecord, 0, len(docs))
	for n, d := range docs {
		doc, ok := d.(map[string]any)
		if !ok {
			return nil, false, docsearch.Errorf(docsearch.EMALFORMED, "docs[%d] is not an object", n)
		}
		records = append(records, &docsearch.IndexRecord{
			Title:       stringField(doc["title"]),
			Description: stringField(doc["location"]),
			Text:        docsearch.Truncate(stringField(doc["text"]), docsearch.TextBudget),
		})
	}
	return records, true, nil
}

// stringField returns strings as is and any other non-null value as its
// JSON text.
func stringField(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
