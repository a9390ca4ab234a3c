// Package expand implements query expansion for the document search box:
// dictionary- and corpus-driven expansion terms, rewritten query variations,
// and heuristic filter suggestions, behind a QueryExpansionEngine facade.
package expand

import (
	"github.com/docuflow/docquery/internal/corpus"
	"github.com/docuflow/docquery/internal/lang"
)

// TermType classifies an expansion candidate.
type TermType string

const (
	TermSynonym   TermType = "synonym"
	TermAcronym   TermType = "acronym"
	TermTechnical TermType = "technical"
	TermCorpus    TermType = "corpus"
)

// TermSource records where an expansion candidate came from.
type TermSource string

const (
	SourceCorpus     TermSource = "corpus"
	SourceDictionary TermSource = "dictionary"
	SourceContext    TermSource = "context"
	SourceUser       TermSource = "user"
)

// ExpansionTerm is one candidate word or phrase proposed to broaden a query.
type ExpansionTerm struct {
	Term       string     `json:"term"`
	Type       TermType   `json:"type"`
	Confidence float64    `json:"confidence"`
	Source     TermSource `json:"source"`

	// Frequency is the corpus count, present only when Source is corpus.
	Frequency int `json:"frequency,omitempty"`
}

// QueryVariation is a full rewritten form of the original query.
type QueryVariation struct {
	Text        string  `json:"text"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// FilterType identifies a suggested structured filter.
type FilterType string

const (
	FilterDocumentType FilterType = "documentType"
	FilterDateRange    FilterType = "dateRange"
	FilterAuthor       FilterType = "author"
)

// SuggestedFilter is a heuristic mapping from query tokens to a pre-filled
// filter control. Best-effort, never exhaustive.
type SuggestedFilter struct {
	Type  FilterType `json:"type"`
	Value string     `json:"value"`
}

// ExpansionResult is the complete outcome of one ExpandQuery call.
// All three lists are empty for an empty query.
type ExpansionResult struct {
	OriginalQuery    string            `json:"originalQuery"`
	ExpandedTerms    []ExpansionTerm   `json:"expandedTerms"`
	RankedVariations []QueryVariation  `json:"rankedVariations"`
	SuggestedFilters []SuggestedFilter `json:"suggestedFilters"`

	// Language is the script the expansion ran under.
	Language lang.Language `json:"language"`
}

// CorpusStats re-exports the corpus aggregate for facade callers.
type CorpusStats = corpus.Stats

// TermFrequency re-exports the corpus frequency pair for facade callers.
type TermFrequency = corpus.TermFrequency

// Document is the read-only input to corpus analysis. Only Title and
// Content are consumed; a document with no content is analyzed on its
// title alone.
type Document struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Author  string `json:"author,omitempty" yaml:"author,omitempty"`
}
