package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/mock"
	dsslog "github.com/fwojciec/docsearch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs docset term and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, key string, term string) ([]*docsearch.Result, error) {
				return []*docsearch.Result{{URL: "https://vuejs.org/", Title: "Vue", Icon: "vue.png"}}, nil
			},
		}

		results, err := dsslog.NewLoggingSearcher(inner, logger).Search(context.Background(), "vue", "props")

		require.NoError(t, err)
		assert.Len(t, results, 1)
		output := buf.String()
		assert.Contains(t, output, "msg=search")
		assert.Contains(t, output, "docset=vue")
		assert.Contains(t, output, "term=props")
		assert.Contains(t, output, "count=1")
	})

	t.Run("returns error unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := docsearch.Errorf(docsearch.ECONFIG, "unknown docset %q", "nope")
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, key string, term string) ([]*docsearch.Result, error) {
				return nil, want
			},
		}

		_, err := dsslog.NewLoggingSearcher(inner, logger).Search(context.Background(), "nope", "x")

		assert.Same(t, want, err)
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}

func TestLoggingProvider(t *testing.T) {
	t.Parallel()

	t.Run("delegates name", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Provider{NameFn: func() docsearch.ProviderType { return docsearch.ProviderHostedSearch }}

		p := dsslog.NewLoggingProvider(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

		assert.Equal(t, docsearch.ProviderHostedSearch, p.Name())
	})

	t.Run("logs and re-raises backend errors with code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := docsearch.Errorf(docsearch.ESEARCH, "index %q returned HTTP 403", "vuejs")
		inner := &mock.Provider{
			NameFn: func() docsearch.ProviderType { return docsearch.ProviderHostedSearch },
			SearchFn: func(ctx context.Context, key string, docset *docsearch.Docset, term string) ([]*docsearch.Result, error) {
				return nil, want
			},
		}

		results, err := dsslog.NewLoggingProvider(inner, logger).Search(context.Background(), "vue", &docsearch.Docset{Key: "vue"}, "props")

		assert.Nil(t, results)
		assert.Same(t, want, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "msg=\"provider search\"")
		assert.Contains(t, output, "provider=hosted-search")
		assert.Contains(t, output, "code=search")
	})
}
