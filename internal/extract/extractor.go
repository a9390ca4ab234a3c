// Package extract implements pattern-based concept extraction: term-frequency
// keywords, regex named entities, and co-occurrence topic clusters, combined
// by a coordinating Extractor.
package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/docuflow/docquery/internal/lang"
)

// Result is the outcome of one extraction pass over a text.
type Result struct {
	// Concepts is the deduplicated union of keywords, entity texts, and
	// topics. Order is not significant.
	Concepts []string `json:"concepts"`

	// NamedEntities are all pattern matches, overlaps included.
	NamedEntities []NamedEntity `json:"namedEntities"`

	// Keywords are the top terms by relative frequency.
	Keywords []string `json:"keywords"`

	// Topics are the labeled co-occurrence clusters.
	Topics []string `json:"topics"`

	// Confidence is in [0,1]: it rewards concept density and having enough
	// raw text to trust that density.
	Confidence float64 `json:"confidence"`

	// Language is the script the extraction ran under.
	Language lang.Language `json:"language"`

	// Tokens are the stop-filtered tokens the keywords were scored over.
	// Consumers that accumulate corpus frequencies read these directly
	// instead of re-tokenizing.
	Tokens []string `json:"-"`
}

// Extractor coordinates the per-language pipeline. The zero value is not
// usable; construct with NewExtractor.
type Extractor struct {
	topKeywords int
	maxTopics   int
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithTopKeywords overrides the number of keywords kept per extraction.
func WithTopKeywords(n int) ExtractorOption {
	return func(e *Extractor) {
		if n > 0 {
			e.topKeywords = n
		}
	}
}

// WithMaxTopics overrides the topic-group cap.
func WithMaxTopics(n int) ExtractorOption {
	return func(e *Extractor) {
		if n > 0 {
			e.maxTopics = n
		}
	}
}

// NewExtractor creates an Extractor with default limits.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		topKeywords: DefaultTopKeywords,
		maxTopics:   DefaultMaxTopics,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the full pipeline: resolve language, clean, tokenize, filter
// stop words, score keywords, extract entities, cluster topics, and combine
// everything into concepts with an overall confidence.
func (e *Extractor) Extract(text string, hint lang.Language) Result {
	language := lang.Resolve(hint, text)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{Language: language}
	}

	tokens := lang.FilterStopwords(lang.Tokenize(trimmed, language), language)
	keywords := ScoreKeywords(tokens, e.topKeywords)
	entities := ExtractEntities(trimmed, language)
	topics := ClusterTopics(keywords, trimmed, e.maxTopics)

	concepts := unionConcepts(keywords, entities, topics)

	return Result{
		Concepts:      concepts,
		NamedEntities: entities,
		Keywords:      keywords,
		Topics:        topics,
		Confidence:    confidence(len(concepts), utf8.RuneCountInString(trimmed)),
		Language:      language,
		Tokens:        tokens,
	}
}

// unionConcepts deduplicates keywords, entity texts, and topics into one
// list. Dedup is case-insensitive; the first-seen surface form survives.
func unionConcepts(keywords []string, entities []NamedEntity, topics []string) []string {
	seen := make(map[string]struct{}, len(keywords)+len(entities)+len(topics))
	var concepts []string

	add := func(term string) {
		key := strings.ToLower(strings.TrimSpace(term))
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		concepts = append(concepts, term)
	}

	for _, k := range keywords {
		add(k)
	}
	for _, ent := range entities {
		add(ent.Text)
	}
	for _, t := range topics {
		add(t)
	}
	return concepts
}

// confidence computes min(density*lengthFactor, 1) where density is concepts
// per hundred runes and lengthFactor saturates at a thousand runes. Zero
// concepts or zero text yields zero.
func confidence(conceptCount, textRunes int) float64 {
	if conceptCount == 0 || textRunes == 0 {
		return 0
	}

	denominator := float64(textRunes) / 100
	if denominator < 1 {
		denominator = 1
	}
	density := float64(conceptCount) / denominator

	lengthFactor := float64(textRunes) / 1000
	if lengthFactor > 1 {
		lengthFactor = 1
	}

	c := density * lengthFactor
	if c > 1 {
		return 1
	}
	return c
}
