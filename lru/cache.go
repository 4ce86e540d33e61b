// Package lru memoizes local index reads with a bounded, expiring cache.
package lru

import (
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Ensure IndexCache implements docsearch.IndexReader at compile time.
var _ docsearch.IndexReader = (*IndexCache)(nil)

// IndexCache wraps an IndexReader and keeps the most recently read indexes
// in memory. Failed reads are never cached, so a docset that has not been
// indexed yet is picked up as soon as its cache file appears.
type IndexCache struct {
	next  docsearch.IndexReader
	cache *expirable.LRU[string, []*docsearch.IndexRecord]
}

// NewIndexCache creates an IndexCache holding at most size indexes, each for
// at most ttl. A zero ttl disables expiry.
func NewIndexCache(next docsearch.IndexReader, size int, ttl time.Duration) *IndexCache {
	if size <= 0 {
		size = 1
	}
	return &IndexCache{
		next:  next,
		cache: expirable.NewLRU[string, []*docsearch.IndexRecord](size, nil, ttl),
	}
}

// ReadIndex returns the memoized index for key, reading through on a miss.
func (c *IndexCache) ReadIndex(key string) ([]*docsearch.IndexRecord, error) {
	if records, ok := c.cache.Get(key); ok {
		return records, nil
	}

	records, err := c.next.ReadIndex(key)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, records)
	return records, nil
}

// Invalidate drops the memoized index for key.
func (c *IndexCache) Invalidate(key string) {
	c.cache.Remove(key)
}

// Writer returns an IndexWriter that writes through w and drops the
// memoized index of every key it writes, so the next read sees the new
// records.
func (c *IndexCache) Writer(w docsearch.IndexWriter) *Writer {
	return &Writer{next: w, cache: c}
}

// Ensure Writer implements docsearch.IndexWriter at compile time.
var _ docsearch.IndexWriter = (*Writer)(nil)

// Writer is the write side of an IndexCache.
type Writer struct {
	next  docsearch.IndexWriter
	cache *IndexCache
}

// WriteIndex writes the records and invalidates the memoized index. The
// memoized index is kept when the write fails.
func (w *Writer) WriteIndex(key string, records []*docsearch.IndexRecord) error {
	if err := w.next.WriteIndex(key, records); err != nil {
		return err
	}
	w.cache.Invalidate(key)
	return nil
}

// Len returns the number of memoized indexes.
func (c *IndexCache) Len() int {
	return c.cache.Len()
}
