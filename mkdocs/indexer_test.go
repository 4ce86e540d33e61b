package mkdocs_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/mkdocs"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastapiDocset() *docsearch.Docset {
	return &docsearch.Docset{
		Key:            "fastapi",
		Name:           "FastAPI",
		Icon:           "images/fastapi.png",
		URL:            "https://fastapi.tiangolo.com",
		Provider:       docsearch.ProviderLocalIndex,
		SearchIndexURL: "https://fastapi.tiangolo.com/search/search_index.json",
	}
}

func staticFetcher(body string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) ([]byte, error) {
			return []byte(body), nil
		},
	}
}

func TestIndexer_Index(t *testing.T) {
	t.Parallel()

	t.Run("writes mapped records in document order", func(t *testing.T) {
		t.Parallel()

		var (
			gotURL     string
			gotKey     string
			gotRecords []*docsearch.IndexRecord
		)
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				gotURL = url
				return []byte(`{"config":{},"docs":[
					{"location":"","title":"FastAPI","text":"  FastAPI framework, high performance  "},
					{"location":"tutorial/","title":"Tutorial - User Guide","text":"` + strings.Repeat("x", 100) + `"}
				]}`), nil
			},
		}
		writer := &mock.IndexWriter{
			WriteIndexFn: func(key string, records []*docsearch.IndexRecord) error {
				gotKey = key
				gotRecords = records
				return nil
			},
		}

		err := mkdocs.NewIndexer(fetcher, writer).Index(context.Background(), "fastapi", fastapiDocset())

		require.NoError(t, err)
		assert.Equal(t, "https://fastapi.tiangolo.com/search/search_index.json", gotURL)
		assert.Equal(t, "fastapi", gotKey)
		require.Len(t, gotRecords, 2)
		assert.Equal(t, &docsearch.IndexRecord{
			Title:       "FastAPI",
			Description: "",
			Text:        "FastAPI framework, high performance",
		}, gotRecords[0])
		assert.Equal(t, "Tutorial - User Guide", gotRecords[1].Title)
		assert.Equal(t, "tutorial/", gotRecords[1].Description)
		assert.Equal(t, docsearch.TextBudget, utf8.RuneCountInString(gotRecords[1].Text))
		assert.True(t, strings.HasSuffix(gotRecords[1].Text, docsearch.Ellipsis))
	})

	t.Run("is a no-op when docs field is missing", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{`{"config":{}}`, `{"docs":null}`, `[]`, `"docs"`} {
			writer := &mock.IndexWriter{
				WriteIndexFn: func(key string, records []*docsearch.IndexRecord) error {
					t.Fatalf("unexpected write for body %s", body)
					return nil
				},
			}

			err := mkdocs.NewIndexer(staticFetcher(body), writer).Index(context.Background(), "fastapi", fastapiDocset())

			assert.NoError(t, err, body)
		}
	})

	t.Run("writes empty index for empty docs array", func(t *testing.T) {
		t.Parallel()

		var gotRecords []*docsearch.IndexRecord
		writer := &mock.IndexWriter{
			WriteIndexFn: func(key string, records []*docsearch.IndexRecord) error {
				gotRecords = records
				return nil
			},
		}

		err := mkdocs.NewIndexer(staticFetcher(`{"docs":[]}`), writer).Index(context.Background(), "fastapi", fastapiDocset())

		require.NoError(t, err)
		assert.NotNil(t, gotRecords)
		assert.Empty(t, gotRecords)
	})

	t.Run("returns EMALFORMED for unparsable document", func(t *testing.T) {
		t.Parallel()

		writer := &mock.IndexWriter{}

		err := mkdocs.NewIndexer(staticFetcher(`<html>404</html>`), writer).Index(context.Background(), "fastapi", fastapiDocset())

		require.Error(t, err)
		assert.Equal(t, docsearch.EMALFORMED, docsearch.ErrorCode(err))
	})

	t.Run("returns ECONFIG without search index url", func(t *testing.T) {
		t.Parallel()

		d := fastapiDocset()
		d.SearchIndexURL = ""

		err := mkdocs.NewIndexer(&mock.Fetcher{}, &mock.IndexWriter{}).Index(context.Background(), "fastapi", d)

		require.Error(t, err)
		assert.Equal(t, docsearch.ECONFIG, docsearch.ErrorCode(err))
	})

	t.Run("propagates fetch errors without writing", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				return nil, docsearch.Errorf(docsearch.EFETCH, "HTTP 404 for %s", url)
			},
		}

		err := mkdocs.NewIndexer(fetcher, &mock.IndexWriter{}).Index(context.Background(), "fastapi", fastapiDocset())

		require.Error(t, err)
		assert.Equal(t, docsearch.EFETCH, docsearch.ErrorCode(err))
	})

	t.Run("does not write once the context is done", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				// The caller gives up while the body is still being read.
				cancel()
				return []byte(`{"docs": [{"title": "Stale", "location": "stale/", "text": ""}]}`), nil
			},
		}
		writes := 0
		writer := &mock.IndexWriter{
			WriteIndexFn: func(key string, records []*docsearch.IndexRecord) error {
				writes++
				return nil
			},
		}

		err := mkdocs.NewIndexer(fetcher, writer).Index(ctx, "fastapi", fastapiDocset())

		require.Error(t, err)
		assert.Equal(t, docsearch.EFETCH, docsearch.ErrorCode(err))
		assert.Zero(t, writes)
	})
}

func TestParseSearchIndex(t *testing.T) {
	t.Parallel()

	t.Run("stores non-string text as JSON", func(t *testing.T) {
		t.Parallel()

		records, ok, err := mkdocs.ParseSearchIndex([]byte(`{"docs":[{"location":"a/","title":"A","text":42},{"location":"b/","title":"B","text":["x","y"]}]}`))

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "42", records[0].Text)
		assert.Equal(t, `["x","y"]`, records[1].Text)
	})

	t.Run("tolerates missing fields", func(t *testing.T) {
		t.Parallel()

		records, ok, err := mkdocs.ParseSearchIndex([]byte(`{"docs":[{"title":"Only title"}]}`))

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, &docsearch.IndexRecord{Title: "Only title"}, records[0])
	})

	t.Run("rejects non-object documents", func(t *testing.T) {
		t.Parallel()

		_, _, err := mkdocs.ParseSearchIndex([]byte(`{"docs":["not an object"]}`))

		assert.Equal(t, docsearch.EMALFORMED, docsearch.ErrorCode(err))
	})
}
