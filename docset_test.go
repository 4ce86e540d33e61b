package docsearch_test

import (
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderType_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, docsearch.ProviderHostedSearch.Valid())
	assert.True(t, docsearch.ProviderLocalIndex.Valid())
	assert.False(t, docsearch.ProviderType("").Valid())
	assert.False(t, docsearch.ProviderType("algolia").Valid())
}

func TestDocset_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		docset  docsearch.Docset
		wantErr bool
	}{
		{
			name: "valid hosted search",
			docset: docsearch.Docset{
				Key:           "vue",
				Provider:      docsearch.ProviderHostedSearch,
				ApplicationID: "APP",
				APIKey:        "key",
				IndexName:     "vuejs",
			},
		},
		{
			name: "valid local index",
			docset: docsearch.Docset{
				Key:            "mkdocs",
				Provider:       docsearch.ProviderLocalIndex,
				SearchIndexURL: "https://www.mkdocs.org/search/search_index.json",
			},
		},
		{
			name:    "missing provider",
			docset:  docsearch.Docset{Key: "x"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			docset:  docsearch.Docset{Key: "x", Provider: "elastic"},
			wantErr: true,
		},
		{
			name:    "hosted search without credentials",
			docset:  docsearch.Docset{Key: "x", Provider: docsearch.ProviderHostedSearch, IndexName: "idx"},
			wantErr: true,
		},
		{
			name:    "local index without url",
			docset:  docsearch.Docset{Key: "x", Provider: docsearch.ProviderLocalIndex},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.docset.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, docsearch.ECONFIG, docsearch.ErrorCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDocset_Summary(t *testing.T) {
	t.Parallel()

	d := &docsearch.Docset{
		Key:         "vue",
		Name:        "Vue",
		Description: "Vue.js documentation",
		Icon:        "images/vue.png",
		URL:         "https://vuejs.org",
		Provider:    docsearch.ProviderHostedSearch,
	}

	assert.Equal(t, docsearch.DocsetSummary{
		Key:         "vue",
		Name:        "Vue",
		Description: "Vue.js documentation",
		Icon:        "images/vue.png",
		URL:         "https://vuejs.org",
	}, d.Summary())
}
