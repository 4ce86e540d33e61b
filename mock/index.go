package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.IndexReader = (*IndexReader)(nil)

// IndexReader is a mock implementation of docsearch.IndexReader.
type IndexReader struct {
	ReadIndexFn func(key string) ([]*docsearch.IndexRecord, error)
}

func (r *IndexReader) ReadIndex(key string) ([]*docsearch.IndexRecord, error) {
	return r.ReadIndexFn(key)
}

var _ docsearch.IndexWriter = (*IndexWriter)(nil)

// IndexWriter is a mock implementation of docsearch.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(key string, records []*docsearch.IndexRecord) error
}

func (w *IndexWriter) WriteIndex(key string, records []*docsearch.IndexRecord) error {
	return w.WriteIndexFn(key, records)
}

var _ docsearch.Indexer = (*Indexer)(nil)

// Indexer is a mock implementation of docsearch.Indexer.
type Indexer struct {
	IndexFn func(ctx context.Context, key string, docset *docsearch.Docset) error
}

func (i *Indexer) Index(ctx context.Context, key string, docset *docsearch.Docset) error {
	return i.IndexFn(ctx, key, docset)
}
