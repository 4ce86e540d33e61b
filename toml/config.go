// Package toml loads docsearch configuration files.
package toml

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docsearch"
	gotoml "github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the config file inside the user directory.
const ConfigFile = "config.toml"

// DefaultPath returns the config file path inside userDir.
func DefaultPath(userDir string) string {
	return filepath.Join(userDir, ConfigFile)
}

// file mirrors the on-disk format. Durations are Go duration strings such
// as "24h" or "30s"; unset keys keep the base value.
type file struct {
	CacheDir          string   `toml:"cache_dir"`
	UserDir           string   `toml:"user_dir"`
	RefreshInterval   string   `toml:"refresh_interval"`
	IndexTimeout      string   `toml:"index_timeout"`
	SearchTimeout     string   `toml:"search_timeout"`
	CacheSize         *int     `toml:"cache_size"`
	CacheTTL          string   `toml:"cache_ttl"`
	Concurrency       *int     `toml:"concurrency"`
	RequestsPerSecond *float64 `toml:"requests_per_second"`
	DefaultIcon       string   `toml:"default_icon"`
}

// LoadConfig reads the file at path and applies it over base. A missing
// file returns base unchanged. Syntax errors, unknown keys, and invalid
// values return EMALFORMED.
func LoadConfig(path string, base docsearch.Config) (docsearch.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	} else if err != nil {
		return base, docsearch.Errorf(docsearch.EMALFORMED, "cannot read config %s: %v", path, err)
	}
	return ParseConfig(data, base)
}

// ParseConfig applies TOML data over base.
func ParseConfig(data []byte, base docsearch.Config) (docsearch.Config, error) {
	var f file
	dec := gotoml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return base, docsearch.Errorf(docsearch.EMALFORMED, "invalid config: %v", err)
	}

	cfg := base
	if f.CacheDir != "" {
		cfg.CacheDir = f.CacheDir
	}
	if f.UserDir != "" {
		cfg.UserDir = f.UserDir
	}
	if f.DefaultIcon != "" {
		cfg.DefaultIcon = f.DefaultIcon
	}

	durations := []struct {
		key   string
		value string
		dst   *time.Duration
	}{
		{"refresh_interval", f.RefreshInterval, &cfg.RefreshInterval},
		{"index_timeout", f.IndexTimeout, &cfg.IndexTimeout},
		{"search_timeout", f.SearchTimeout, &cfg.SearchTimeout},
		{"cache_ttl", f.CacheTTL, &cfg.CacheTTL},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		v, err := time.ParseDuration(d.value)
		if err != nil || v < 0 {
			return base, docsearch.Errorf(docsearch.EMALFORMED, "invalid %s %q", d.key, d.value)
		}
		*d.dst = v
	}
	// Memoized indexes follow the rebuild interval unless set explicitly.
	if f.RefreshInterval != "" && f.CacheTTL == "" {
		cfg.CacheTTL = cfg.RefreshInterval
	}

	if f.CacheSize != nil {
		if *f.CacheSize <= 0 {
			return base, docsearch.Errorf(docsearch.EMALFORMED, "cache_size must be positive")
		}
		cfg.CacheSize = *f.CacheSize
	}
	if f.Concurrency != nil {
		if *f.Concurrency <= 0 {
			return base, docsearch.Errorf(docsearch.EMALFORMED, "concurrency must be positive")
		}
		cfg.Concurrency = *f.Concurrency
	}
	if f.RequestsPerSecond != nil {
		if *f.RequestsPerSecond < 0 {
			return base, docsearch.Errorf(docsearch.EMALFORMED, "requests_per_second must not be negative")
		}
		cfg.RequestsPerSecond = *f.RequestsPerSecond
	}

	return cfg, nil
}
