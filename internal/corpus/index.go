// Package corpus maintains the mutable, resettable aggregate built from a
// loaded document set: term frequencies, technical-term flags, corpus-derived
// acronym definitions, and concept clusters.
package corpus

import (
	"regexp"
	"sort"
	"strings"

	snowballeng "github.com/kljensen/snowball/english"

	"github.com/docuflow/docquery/internal/dictionary"
	"github.com/docuflow/docquery/internal/extract"
	"github.com/docuflow/docquery/internal/lang"
)

// Stats summarizes the accumulated corpus state.
type Stats struct {
	TotalTerms      int `json:"totalTerms"`
	UniqueTerms     int `json:"uniqueTerms"`
	ConceptClusters int `json:"conceptClusters"`
	TechnicalTerms  int `json:"technicalTerms"`
}

// TermFrequency pairs a corpus term with its accumulated count.
type TermFrequency struct {
	Term      string `json:"term"`
	Frequency int    `json:"frequency"`
}

// Related is a corpus term related to a query token.
type Related struct {
	Term      string
	Frequency int
	// Weight is the term's frequency relative to the corpus maximum, in (0,1].
	Weight float64
}

// acronymDefRegex matches an expansion phrase immediately followed by its
// acronym in parentheses: "Document Control System (DCS)".
var acronymDefRegex = regexp.MustCompile(`((?:[A-Z][A-Za-z]+\s+)+)\(([A-Z]{2,})\)`)

// capitalizedWordRegex matches a single capitalized or mixed-case word.
var capitalizedWordRegex = regexp.MustCompile(`\b[A-Z][A-Za-z]*\b`)

// Index accumulates corpus analysis results across AnalyzeCorpus calls.
// Re-analysis accumulates: counters are monotonic until Reset. It is not
// safe for concurrent use; the engine serializes access.
type Index struct {
	freqs     map[string]int
	order     map[string]int // first-seen rank, tie-break for frequency sorts
	nextOrder int

	technical map[string]struct{}
	topics    map[string]struct{}

	// groups holds one keyword set per analyzed document; related-term
	// lookups treat co-membership as relatedness.
	groups [][]string

	totalTerms int
	docCount   int
	analyzed   bool
}

// NewIndex creates an empty corpus index.
func NewIndex() *Index {
	idx := &Index{}
	idx.clear()
	return idx
}

func (x *Index) clear() {
	x.freqs = make(map[string]int)
	x.order = make(map[string]int)
	x.nextOrder = 0
	x.technical = make(map[string]struct{})
	x.topics = make(map[string]struct{})
	x.groups = nil
	x.totalTerms = 0
	x.docCount = 0
	x.analyzed = false
}

// AddDocument folds one document's extraction result into the index.
// The raw text is scanned separately for technical-term casing signals and
// acronym definitions; discovered definitions are fed into dict under
// source context.
func (x *Index) AddDocument(text string, res extract.Result, dict *dictionary.Store) {
	for _, tok := range res.Tokens {
		term := normalizeTerm(tok, res.Language)
		if _, seen := x.freqs[term]; !seen {
			x.order[term] = x.nextOrder
			x.nextOrder++
		}
		x.freqs[term]++
		x.totalTerms++
	}

	for _, topic := range res.Topics {
		x.topics[normalizeTerm(topic, res.Language)] = struct{}{}
	}

	if len(res.Keywords) > 0 {
		group := make([]string, len(res.Keywords))
		for i, kw := range res.Keywords {
			group[i] = normalizeTerm(kw, res.Language)
		}
		x.groups = append(x.groups, group)
	}

	if res.Language == lang.English {
		x.scanTechnicalTerms(text, dict)
	}

	x.docCount++
	x.analyzed = true
}

// scanTechnicalTerms flags mixed-case/capitalized terms appearing beyond
// sentence-initial position and records acronym definitions found in
// running text.
func (x *Index) scanTechnicalTerms(text string, dict *dictionary.Store) {
	for _, m := range acronymDefRegex.FindAllStringSubmatch(text, -1) {
		phrase := strings.TrimSpace(m[1])
		acronym := m[2]
		if dict != nil {
			dict.AddContextAcronym(acronym, phrase)
		}
		x.technical[strings.ToLower(acronym)] = struct{}{}
	}

	for _, loc := range capitalizedWordRegex.FindAllStringIndex(text, -1) {
		word := text[loc[0]:loc[1]]
		if sentenceInitial(text, loc[0]) && !isMixedCase(word) {
			continue
		}
		if len(word) < 3 {
			continue
		}
		x.technical[strings.ToLower(word)] = struct{}{}
	}
}

// sentenceInitial reports whether the word starting at off opens the text
// or follows a sentence terminator.
func sentenceInitial(text string, off int) bool {
	for i := off - 1; i >= 0; i-- {
		c := text[i]
		switch {
		case c == ' ' || c == '\n' || c == '\t' || c == '\r':
			continue
		case c == '.' || c == '!' || c == '?':
			return true
		default:
			return false
		}
	}
	return true
}

// isMixedCase reports whether a word carries internal capitalization
// (PostgreSQL, OAuth) or is fully upper-cased beyond two letters.
func isMixedCase(word string) bool {
	if len(word) < 2 {
		return false
	}
	upper := 0
	for _, r := range word {
		if r >= 'A' && r <= 'Z' {
			upper++
		}
	}
	if upper == len(word) {
		return len(word) >= 2
	}
	// Capitalized-only words (one leading upper) are not mixed case.
	return upper >= 2
}

// Analyzed reports whether any document has been folded in since the last
// reset.
func (x *Index) Analyzed() bool {
	return x.analyzed
}

// DocumentCount returns the number of documents folded in.
func (x *Index) DocumentCount() int {
	return x.docCount
}

// Stats returns accumulated statistics, or nil before the first analysis
// and after Reset.
func (x *Index) Stats() *Stats {
	if !x.analyzed {
		return nil
	}
	return &Stats{
		TotalTerms:      x.totalTerms,
		UniqueTerms:     len(x.freqs),
		ConceptClusters: len(x.topics),
		TechnicalTerms:  len(x.technical),
	}
}

// Frequency returns the accumulated count for a normalized term.
func (x *Index) Frequency(term string, language lang.Language) int {
	return x.freqs[normalizeTerm(term, language)]
}

// IsTechnical reports whether a term was flagged technical.
func (x *Index) IsTechnical(term string) bool {
	_, ok := x.technical[strings.ToLower(term)]
	return ok
}

// MostFrequentTerms returns the top n terms by frequency, descending, ties
// broken by first-seen order.
func (x *Index) MostFrequentTerms(n int) []TermFrequency {
	if n <= 0 || len(x.freqs) == 0 {
		return nil
	}

	terms := make([]TermFrequency, 0, len(x.freqs))
	for term, freq := range x.freqs {
		terms = append(terms, TermFrequency{Term: term, Frequency: freq})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Frequency != terms[j].Frequency {
			return terms[i].Frequency > terms[j].Frequency
		}
		return x.order[terms[i].Term] < x.order[terms[j].Term]
	})

	if n > len(terms) {
		n = len(terms)
	}
	return terms[:n]
}

// RelatedTerms returns corpus terms related to token: members of a shared
// document keyword group, or terms sharing the token's English stem. Results
// are ranked by frequency descending and truncated to max.
func (x *Index) RelatedTerms(token string, language lang.Language, max int) []Related {
	if max <= 0 || !x.analyzed {
		return nil
	}

	norm := normalizeTerm(token, language)
	candidates := make(map[string]struct{})

	for _, group := range x.groups {
		if !containsTerm(group, norm, language) {
			continue
		}
		for _, member := range group {
			if member != norm {
				candidates[member] = struct{}{}
			}
		}
	}

	if language == lang.English {
		stem := snowballeng.Stem(norm, false)
		for term := range x.freqs {
			if term != norm && snowballeng.Stem(term, false) == stem {
				candidates[term] = struct{}{}
			}
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	maxFreq := 0
	for _, f := range x.freqs {
		if f > maxFreq {
			maxFreq = f
		}
	}

	related := make([]Related, 0, len(candidates))
	for term := range candidates {
		freq := x.freqs[term]
		if freq == 0 {
			continue
		}
		related = append(related, Related{
			Term:      term,
			Frequency: freq,
			Weight:    float64(freq) / float64(maxFreq),
		})
	}
	sort.Slice(related, func(i, j int) bool {
		if related[i].Frequency != related[j].Frequency {
			return related[i].Frequency > related[j].Frequency
		}
		return x.order[related[i].Term] < x.order[related[j].Term]
	})

	if max > len(related) {
		max = len(related)
	}
	return related[:max]
}

// containsTerm checks group membership with stem tolerance for English.
func containsTerm(group []string, norm string, language lang.Language) bool {
	for _, member := range group {
		if member == norm {
			return true
		}
	}
	if language != lang.English {
		return false
	}
	stem := snowballeng.Stem(norm, false)
	for _, member := range group {
		if snowballeng.Stem(member, false) == stem {
			return true
		}
	}
	return false
}

// Reset clears all accumulated state; Stats returns nil again afterwards.
func (x *Index) Reset() {
	x.clear()
}

// normalizeTerm lower-cases Latin terms; Arabic terms keep their surface
// form.
func normalizeTerm(term string, language lang.Language) string {
	if language == lang.Arabic {
		return strings.TrimSpace(term)
	}
	return strings.ToLower(strings.TrimSpace(term))
}
