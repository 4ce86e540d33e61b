// Package fs stores local search indexes as JSON files on disk.
package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsearch"
	"github.com/gofrs/flock"
)

// Ensure IndexStore implements the index interfaces at compile time.
var (
	_ docsearch.IndexReader = (*IndexStore)(nil)
	_ docsearch.IndexWriter = (*IndexStore)(nil)
)

// IndexStore keeps one <key>.json file per docset in a directory.
// Writes replace the whole file atomically, so readers see either the old
// or the new index and never a partial one.
type IndexStore struct {
	dir string
}

// NewIndexStore creates an IndexStore rooted at dir. The directory is
// created on first write.
func NewIndexStore(dir string) *IndexStore {
	return &IndexStore{dir: dir}
}

// Path returns the cache file path for a docset key.
func (s *IndexStore) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *IndexStore) lockPath(key string) string {
	return filepath.Join(s.dir, key+".lock")
}

// ReadIndex returns the cached records of a docset in file order.
// Returns ECACHEMISS if the docset has never been indexed.
func (s *IndexStore) ReadIndex(key string) ([]*docsearch.IndexRecord, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, docsearch.Errorf(docsearch.ECACHEMISS, "no local index for docset %q", key)
	} else if err != nil {
		return nil, err
	}

	var records []*docsearch.IndexRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, docsearch.Errorf(docsearch.EMALFORMED, "invalid local index for docset %q: %v", key, err)
	}
	return records, nil
}

// WriteIndex replaces the cached records of a docset. Concurrent writers
// for the same key, including other processes, are serialized by a lock
// file next to the index.
func (s *IndexStore) WriteIndex(key string, records []*docsearch.IndexRecord) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if records == nil {
		records = []*docsearch.IndexRecord{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "encode local index for docset %q: %v", key, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	lock := flock.New(s.lockPath(key))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	if unchanged(s.Path(key), data) {
		return nil
	}
	return writeAtomic(s.dir, s.Path(key), data)
}

// unchanged reports whether the file at path already holds data.
func unchanged(path string, data []byte) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return xxhash.Sum64(existing) == xxhash.Sum64(data)
}

// writeAtomic writes data to a temp file in dir, then renames it over path.
func writeAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func validateKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return docsearch.Errorf(docsearch.EINVALID, "invalid docset key %q", key)
	}
	return nil
}
