// Package registry loads the built-in and user docset catalogs and serves
// lookups over the merged result.
package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docsearch"
)

// CatalogFile is the file name of the user catalog inside the user directory.
const CatalogFile = "docsets.json"

// Ensure Registry implements docsearch.DocsetService at compile time.
var _ docsearch.DocsetService = (*Registry)(nil)

// Registry is an immutable, ordered set of docsets keyed by docset key.
type Registry struct {
	keys    []string
	docsets map[string]*docsearch.Docset
}

// Option configures Load.
type Option func(*options)

type options struct {
	userDir     string
	defaultIcon string
	warn        func(error)
}

// WithUserDir sets the directory holding the user catalog and its icons.
// Without it only the built-in catalog is loaded.
func WithUserDir(dir string) Option {
	return func(o *options) {
		o.userDir = dir
	}
}

// WithDefaultIcon sets the icon used for user docsets whose icon file
// does not exist. Defaults to docsearch.DefaultIcon.
func WithDefaultIcon(path string) Option {
	return func(o *options) {
		o.defaultIcon = path
	}
}

// WithWarnFunc sets a callback for non-fatal load problems, such as a
// malformed user catalog.
func WithWarnFunc(fn func(error)) Option {
	return func(o *options) {
		o.warn = fn
	}
}

// Load builds a Registry from the built-in catalog, then merges the user
// catalog over it. A missing or malformed built-in catalog is fatal and
// returns EMALFORMED. A malformed user catalog is reported through the warn
// callback and skipped.
func Load(builtin []byte, opts ...Option) (*Registry, error) {
	o := options{defaultIcon: docsearch.DefaultIcon}
	for _, opt := range opts {
		opt(&o)
	}

	keys, docsets, err := decodeCatalog(builtin)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EMALFORMED, "invalid built-in docset catalog: %v", err)
	}
	if len(keys) == 0 {
		return nil, docsearch.Errorf(docsearch.EMALFORMED, "built-in docset catalog is empty")
	}

	r := &Registry{keys: keys, docsets: docsets}

	if o.userDir == "" {
		return r, nil
	}
	if err := r.mergeUser(o.userDir, o.defaultIcon); err != nil && o.warn != nil {
		o.warn(err)
	}
	return r, nil
}

// mergeUser merges the user catalog into r. The registry is left unchanged
// when the catalog cannot be read or decoded.
func (r *Registry) mergeUser(dir, defaultIcon string) error {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}

	path := filepath.Join(dir, CatalogFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return docsearch.Errorf(docsearch.EMALFORMED, "cannot read user docset catalog %s: %v", path, err)
	}

	keys, docsets, err := decodeCatalog(data)
	if err != nil {
		return docsearch.Errorf(docsearch.EMALFORMED, "invalid user docset catalog %s: %v", path, err)
	}

	for _, key := range keys {
		d := docsets[key]
		d.Icon = resolveIcon(dir, d.Icon, defaultIcon)
		if _, exists := r.docsets[key]; !exists {
			r.keys = append(r.keys, key)
		}
		r.docsets[key] = d
	}
	return nil
}

// resolveIcon returns the absolute path of a user icon, or the fallback if
// the file does not exist.
func resolveIcon(dir, icon, fallback string) string {
	if icon == "" {
		return fallback
	}
	path := filepath.Join(dir, icon)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return fallback
	}
	return path
}

// decodeCatalog decodes a JSON object of docsets, preserving key order.
func decodeCatalog(data []byte) ([]string, map[string]*docsearch.Docset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, errors.New("catalog must be a JSON object")
	}

	var keys []string
	docsets := make(map[string]*docsearch.Docset)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key := tok.(string)

		var d docsearch.Docset
		if err := dec.Decode(&d); err != nil {
			return nil, nil, err
		}
		d.Key = key

		if _, dup := docsets[key]; !dup {
			keys = append(keys, key)
		}
		docsets[key] = &d
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, errors.New("unexpected data after catalog object")
	}

	return keys, docsets, nil
}

// ListDocsets returns summaries of all docsets in registry order, keeping
// only those whose name contains filter, ignoring case, when filter is set.
func (r *Registry) ListDocsets(filter string) []docsearch.DocsetSummary {
	filter = strings.ToLower(filter)

	summaries := make([]docsearch.DocsetSummary, 0, len(r.keys))
	for _, key := range r.keys {
		d := r.docsets[key]
		if filter != "" && !strings.Contains(strings.ToLower(d.Name), filter) {
			continue
		}
		summaries = append(summaries, d.Summary())
	}
	return summaries
}

// HasDocset reports whether a docset with the exact key exists.
func (r *Registry) HasDocset(key string) bool {
	_, ok := r.docsets[key]
	return ok
}

// FindDocset returns a copy of the docset with the exact key.
func (r *Registry) FindDocset(key string) (*docsearch.Docset, bool) {
	d, ok := r.docsets[key]
	if !ok {
		return nil, false
	}
	return clone(d), true
}

// DocsetsByProvider returns copies of all docsets served by provider, in
// registry order.
func (r *Registry) DocsetsByProvider(provider docsearch.ProviderType) []*docsearch.Docset {
	var out []*docsearch.Docset
	for _, key := range r.keys {
		if d := r.docsets[key]; d.Provider == provider {
			out = append(out, clone(d))
		}
	}
	return out
}

// Len returns the number of docsets.
func (r *Registry) Len() int {
	return len(r.keys)
}

func clone(d *docsearch.Docset) *docsearch.Docset {
	c := *d
	if d.FacetFilters != nil {
		c.FacetFilters = append([]any(nil), d.FacetFilters...)
	}
	return &c
}
