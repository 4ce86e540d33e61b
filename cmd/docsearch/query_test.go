package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docsearch"
	main "github.com/fwojciec/docsearch/cmd/docsearch"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryDeps(stdout *bytes.Buffer, searcher docsearch.Searcher, listed *string) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
		Docsets: &mock.DocsetService{
			HasDocsetFn: func(key string) bool { return key == "vue" },
			ListDocsetsFn: func(filter string) []docsearch.DocsetSummary {
				*listed = filter
				return summaries(10)
			},
		},
		Searcher: searcher,
	}
}

func TestQueryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("searches when first word is a docset key", func(t *testing.T) {
		t.Parallel()

		var gotKey, gotTerm, listed string
		searcher := &mock.Searcher{
			SearchFn: func(ctx context.Context, key string, term string) ([]*docsearch.Result, error) {
				gotKey, gotTerm = key, term
				return resultsN(10), nil
			},
		}
		stdout := &bytes.Buffer{}

		err := (&main.QueryCmd{Input: []string{"vue", "computed", "props"}}).Run(queryDeps(stdout, searcher, &listed))

		require.NoError(t, err)
		assert.Equal(t, "vue", gotKey)
		assert.Equal(t, "computed props", gotTerm)
		assert.Contains(t, stdout.String(), "Result 7")
		assert.NotContains(t, stdout.String(), "Result 8")
	})

	t.Run("asks for more input when term is too short", func(t *testing.T) {
		t.Parallel()

		var listed string
		searcher := &mock.Searcher{
			SearchFn: func(ctx context.Context, key string, term string) ([]*docsearch.Result, error) {
				t.Fatal("search should not run for short terms")
				return nil, nil
			},
		}
		stdout := &bytes.Buffer{}

		err := (&main.QueryCmd{Input: []string{"vue", "co"}}).Run(queryDeps(stdout, searcher, &listed))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "keep typing")
	})

	t.Run("lists docsets filtered by input otherwise", func(t *testing.T) {
		t.Parallel()

		var listed string
		stdout := &bytes.Buffer{}

		err := (&main.QueryCmd{Input: []string{"react", "hooks"}}).Run(queryDeps(stdout, &mock.Searcher{}, &listed))

		require.NoError(t, err)
		assert.Equal(t, "react hooks", listed)
		assert.Contains(t, stdout.String(), "doc7")
		assert.NotContains(t, stdout.String(), "doc8")
	})

	t.Run("lists all docsets for empty input", func(t *testing.T) {
		t.Parallel()

		listed := "unset"
		stdout := &bytes.Buffer{}

		err := (&main.QueryCmd{}).Run(queryDeps(stdout, &mock.Searcher{}, &listed))

		require.NoError(t, err)
		assert.Equal(t, "", listed)
	})
}
