package toml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() docsearch.Config {
	return docsearch.Config{
		CacheDir:          "/cache",
		UserDir:           "/user",
		RefreshInterval:   24 * time.Hour,
		IndexTimeout:      30 * time.Second,
		SearchTimeout:     5 * time.Second,
		CacheSize:         10,
		CacheTTL:          24 * time.Hour,
		Concurrency:       2,
		RequestsPerSecond: 1,
		DefaultIcon:       docsearch.DefaultIcon,
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns base when file is missing", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.LoadConfig(filepath.Join(t.TempDir(), "config.toml"), baseConfig())

		require.NoError(t, err)
		assert.Equal(t, baseConfig(), cfg)
	})

	t.Run("overrides only the keys present", func(t *testing.T) {
		t.Parallel()

		path := toml.DefaultPath(t.TempDir())
		require.NoError(t, os.WriteFile(path, []byte(`
cache_dir = "/tmp/indexes"
index_timeout = "1m"
concurrency = 4
requests_per_second = 0.5
`), 0644))

		cfg, err := toml.LoadConfig(path, baseConfig())

		require.NoError(t, err)
		want := baseConfig()
		want.CacheDir = "/tmp/indexes"
		want.IndexTimeout = time.Minute
		want.Concurrency = 4
		want.RequestsPerSecond = 0.5
		assert.Equal(t, want, cfg)
	})

	t.Run("returns EMALFORMED for invalid syntax", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`cache_dir = `), 0644))

		_, err := toml.LoadConfig(path, baseConfig())

		require.Error(t, err)
		assert.Equal(t, docsearch.EMALFORMED, docsearch.ErrorCode(err))
	})
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("cache ttl follows refresh interval", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.ParseConfig([]byte(`refresh_interval = "6h"`), baseConfig())

		require.NoError(t, err)
		assert.Equal(t, 6*time.Hour, cfg.RefreshInterval)
		assert.Equal(t, 6*time.Hour, cfg.CacheTTL)
	})

	t.Run("explicit cache ttl wins", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.ParseConfig([]byte("refresh_interval = \"6h\"\ncache_ttl = \"10m\""), baseConfig())

		require.NoError(t, err)
		assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	})

	tests := []struct {
		name string
		data string
	}{
		{"unknown key", `cache_dirr = "/x"`},
		{"bad duration", `search_timeout = "soon"`},
		{"negative duration", `search_timeout = "-1s"`},
		{"wrong type", `cache_size = "ten"`},
		{"zero cache size", `cache_size = 0`},
		{"zero concurrency", `concurrency = 0`},
		{"negative rate", `requests_per_second = -1.0`},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := toml.ParseConfig([]byte(tt.data), baseConfig())

			require.Error(t, err)
			assert.Equal(t, docsearch.EMALFORMED, docsearch.ErrorCode(err))
			assert.Equal(t, baseConfig(), cfg)
		})
	}
}
