package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/docquery/internal/corpus"
	"github.com/docuflow/docquery/internal/dictionary"
	"github.com/docuflow/docquery/internal/extract"
	"github.com/docuflow/docquery/internal/lang"
)

func newTestRanker(t *testing.T, docs ...string) *ranker {
	t.Helper()
	dict := dictionary.NewStore()
	index := corpus.NewIndex()
	extractor := extract.NewExtractor()
	for _, text := range docs {
		index.AddDocument(text, extractor.Extract(text, lang.Auto), dict)
	}
	return &ranker{dict: dict, index: index}
}

func TestGenerateVariationsSynonymSubstitution(t *testing.T) {
	r := newTestRanker(t)

	query := "find server document"
	terms := r.rank(query, lang.English, DefaultMaxExpansions)
	variations := r.generateVariations(query, lang.English, terms)
	require.NotEmpty(t, variations)

	texts := make([]string, len(variations))
	for i, v := range variations {
		texts[i] = v.Text
		assert.NotEmpty(t, v.Explanation)
		assert.Greater(t, v.Score, 0.0)
		assert.LessOrEqual(t, v.Score, 1.0)
		assert.NotEqual(t, query, v.Text)
	}
	assert.Contains(t, texts, "find infrastructure document")
	assert.Contains(t, texts, "find server file")
}

func TestGenerateVariationsAcronymExpansion(t *testing.T) {
	r := newTestRanker(t)

	query := "API reference"
	terms := r.rank(query, lang.English, DefaultMaxExpansions)
	variations := r.generateVariations(query, lang.English, terms)
	require.NotEmpty(t, variations)

	found := false
	for _, v := range variations {
		if v.Text == "Application Programming Interface reference" {
			found = true
			assert.Contains(t, v.Explanation, "acronym")
		}
	}
	assert.True(t, found, "expected the acronym variation, got %v", variations)
}

func TestGenerateVariationsCorpusAppend(t *testing.T) {
	r := newTestRanker(t,
		"Security measures and security protocols for network security.")

	query := "security"
	terms := r.rank(query, lang.English, DefaultMaxExpansions)
	variations := r.generateVariations(query, lang.English, terms)
	require.NotEmpty(t, variations)

	found := false
	for _, v := range variations {
		if len(v.Text) > len(query) && v.Text[:len(query)] == query {
			found = true
			assert.Contains(t, v.Explanation, "corpus")
		}
	}
	assert.True(t, found, "expected an appended corpus variation, got %v", variations)
}

func TestGenerateVariationsSortedAndCapped(t *testing.T) {
	r := newTestRanker(t,
		"Server infrastructure hosts the archive database and backup servers nightly.")

	query := "server document archive backup api"
	terms := r.rank(query, lang.English, DefaultMaxExpansions)
	variations := r.generateVariations(query, lang.English, terms)

	assert.LessOrEqual(t, len(variations), maxVariations)
	for i := 1; i < len(variations); i++ {
		assert.GreaterOrEqual(t, variations[i-1].Score, variations[i].Score)
	}
}

func TestGenerateVariationsEmptyInputs(t *testing.T) {
	r := newTestRanker(t)

	assert.Empty(t, r.generateVariations("", lang.English, nil))
	assert.Empty(t, r.generateVariations("plain words", lang.English, nil))
}

func TestReplaceToken(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		token       string
		replacement string
		language    lang.Language
		want        string
	}{
		{
			name:  "case insensitive latin",
			query: "Find API docs", token: "api", replacement: "interface",
			language: lang.English, want: "Find interface docs",
		},
		{
			name:  "token absent leaves query",
			query: "find documents", token: "server", replacement: "host",
			language: lang.English, want: "find documents",
		},
		{
			name:  "trailing punctuation ignored",
			query: "restart the server.", token: "server", replacement: "host",
			language: lang.English, want: "restart the host",
		},
		{
			name:  "arabic surface replacement",
			query: "بحث عن مستند", token: "مستند", replacement: "وثيقة",
			language: lang.Arabic, want: "بحث عن وثيقة",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, replaceToken(tt.query, tt.token, tt.replacement, tt.language))
		})
	}
}
