package expand

import (
	"sort"
	"strings"

	snowballeng "github.com/kljensen/snowball/english"

	"github.com/docuflow/docquery/internal/corpus"
	"github.com/docuflow/docquery/internal/dictionary"
	"github.com/docuflow/docquery/internal/lang"
)

// Per-type base confidences for dictionary candidates. Acronym expansions
// are near-deterministic; synonym fit varies with context.
const (
	synonymConfidence = 0.75
	acronymConfidence = 0.85

	// userBoost breaks ties in favor of user-supplied mappings without
	// letting a synonym outrank an acronym.
	userBoost = 0.05

	// corpusCeiling keeps corpus candidates below acronym certainty: the
	// most frequent corpus term scores exactly this much.
	corpusCeiling = 0.8

	// relatedPerToken caps corpus lookups per query token.
	relatedPerToken = 5
)

// ranker merges dictionary-based and corpus-based candidates for a query.
type ranker struct {
	dict  *dictionary.Store
	index *corpus.Index
}

// rank tokenizes the query, gathers synonym, acronym, and corpus candidates
// per token, deduplicates on normalized term, sorts by confidence
// descending, and truncates to maxExpansions.
//
// Dictionary and corpus lookups use each token's own script, not the
// whole-query language: a mixed-script query tokenized under Arabic rules
// still expands its Latin tokens from the English dictionaries.
func (r *ranker) rank(query string, language lang.Language, maxExpansions int) []ExpansionTerm {
	if maxExpansions <= 0 {
		return nil
	}

	tokens := lang.Tokenize(query, language)
	if len(tokens) == 0 {
		return nil
	}

	queryKeys := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		queryKeys[dedupKey(tok, lang.Detect(tok))] = struct{}{}
	}

	seen := make(map[string]struct{})
	var terms []ExpansionTerm

	add := func(t ExpansionTerm) {
		key := dedupKey(t.Term, lang.Detect(t.Term))
		if key == "" {
			return
		}
		if _, isQueryTerm := queryKeys[key]; isQueryTerm {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		terms = append(terms, t)
	}

	for _, tok := range tokens {
		tokLang := lang.Detect(tok)

		if entry, ok := r.dict.Synonyms(tok, tokLang); ok {
			for _, expansion := range entry.Expansions {
				add(ExpansionTerm{
					Term:       expansion,
					Type:       TermSynonym,
					Confidence: dictionaryConfidence(synonymConfidence, entry.Source),
					Source:     dictionarySource(entry.Source),
				})
			}
		}

		if entry, ok := r.dict.Acronyms(tok, tokLang); ok {
			for _, expansion := range entry.Expansions {
				add(ExpansionTerm{
					Term:       expansion,
					Type:       TermAcronym,
					Confidence: dictionaryConfidence(acronymConfidence, entry.Source),
					Source:     dictionarySource(entry.Source),
				})
			}
		}

		if r.index != nil && r.index.Analyzed() {
			for _, rel := range r.index.RelatedTerms(tok, tokLang, relatedPerToken) {
				termType := TermCorpus
				if r.index.IsTechnical(rel.Term) {
					termType = TermTechnical
				}
				add(ExpansionTerm{
					Term:       rel.Term,
					Type:       termType,
					Confidence: rel.Weight * corpusCeiling,
					Source:     SourceCorpus,
					Frequency:  rel.Frequency,
				})
			}
		}
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Confidence > terms[j].Confidence
	})

	if maxExpansions < len(terms) {
		terms = terms[:maxExpansions]
	}
	return terms
}

// dictionaryConfidence applies the user-entry tie-break boost, clamped
// into (0,1].
func dictionaryConfidence(base float64, source dictionary.Source) float64 {
	if source == dictionary.SourceUser {
		base += userBoost
	}
	if base > 1 {
		return 1
	}
	return base
}

// dictionarySource maps a dictionary entry's provenance onto the expansion
// term's source field.
func dictionarySource(source dictionary.Source) TermSource {
	switch source {
	case dictionary.SourceUser:
		return SourceUser
	case dictionary.SourceContext:
		return SourceContext
	default:
		return SourceDictionary
	}
}

// dedupKey normalizes a term for duplicate detection: English terms compare
// by snowball stem so "archives" and "archive" collapse; Arabic terms
// compare by surface form.
func dedupKey(term string, language lang.Language) string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || language == lang.Arabic {
		return term
	}
	if strings.ContainsRune(term, ' ') {
		return term // phrases compare whole
	}
	return snowballeng.Stem(term, false)
}
