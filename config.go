package docsearch

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultIcon is shown for docsets whose icon cannot be resolved.
const DefaultIcon = "images/icon.png"

// Config holds runtime settings shared by the CLI and background services.
type Config struct {
	// CacheDir holds one cached index file per local-index docset.
	CacheDir string

	// UserDir holds the optional user docset catalog and its icons.
	UserDir string

	// RefreshInterval is the delay between background index rebuilds.
	RefreshInterval time.Duration

	// IndexTimeout bounds the rebuild of a single docset.
	IndexTimeout time.Duration

	// SearchTimeout bounds a single hosted search request.
	SearchTimeout time.Duration

	// CacheSize is the number of local indexes kept in memory.
	CacheSize int

	// CacheTTL bounds how long a memoized local index may be served.
	// Zero disables expiry.
	CacheTTL time.Duration

	// Concurrency is the number of docsets indexed in parallel.
	Concurrency int

	// RequestsPerSecond limits index fetches per remote host.
	RequestsPerSecond float64

	// DefaultIcon replaces user docset icons that do not exist on disk.
	DefaultIcon string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		CacheDir:          defaultDir(os.UserCacheDir, "mkdocs-indexes"),
		UserDir:           defaultDir(os.UserConfigDir, ""),
		RefreshInterval:   24 * time.Hour,
		IndexTimeout:      30 * time.Second,
		SearchTimeout:     5 * time.Second,
		CacheSize:         10,
		CacheTTL:          24 * time.Hour,
		Concurrency:       2,
		RequestsPerSecond: 1,
		DefaultIcon:       DefaultIcon,
	}
}

func defaultDir(base func() (string, error), sub string) string {
	dir, err := base()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".docsearch", sub)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "docsearch", sub)
}
