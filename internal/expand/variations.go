package expand

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docuflow/docquery/internal/lang"
)

// maxVariations caps the rewritten query list; each substitution strategy
// contributes at most a handful of rewrites.
const maxVariations = 6

// generateVariations builds full rewritten query strings from ranked
// expansion terms: synonym substitution, acronym expansion, and corpus-term
// addition. Each variation scores by the confidence of the terms it uses.
func (r *ranker) generateVariations(query string, language lang.Language, terms []ExpansionTerm) []QueryVariation {
	if query == "" || len(terms) == 0 {
		return nil
	}

	tokens := lang.Tokenize(query, language)
	var variations []QueryVariation
	seen := map[string]struct{}{strings.ToLower(query): {}}

	add := func(v QueryVariation) {
		key := strings.ToLower(v.Text)
		if _, dup := seen[key]; dup || len(variations) >= maxVariations {
			return
		}
		seen[key] = struct{}{}
		variations = append(variations, v)
	}

	// Synonym substitution: replace each token carrying a synonym hit with
	// its top candidate.
	for _, tok := range tokens {
		entry, ok := r.dict.Synonyms(tok, language)
		if !ok || len(entry.Expansions) == 0 {
			continue
		}
		replacement := entry.Expansions[0]
		rewritten := replaceToken(query, tok, replacement, language)
		if rewritten == query {
			continue
		}
		add(QueryVariation{
			Text:        rewritten,
			Score:       dictionaryConfidence(synonymConfidence, entry.Source),
			Explanation: fmt.Sprintf("replaced %q with synonym %q", tok, replacement),
		})
	}

	// Acronym expansion: replace the acronym with its full form.
	for _, tok := range tokens {
		entry, ok := r.dict.Acronyms(tok, language)
		if !ok || len(entry.Expansions) == 0 {
			continue
		}
		expansion := entry.Expansions[0]
		rewritten := replaceToken(query, tok, expansion, language)
		if rewritten == query {
			continue
		}
		add(QueryVariation{
			Text:        rewritten,
			Score:       dictionaryConfidence(acronymConfidence, entry.Source),
			Explanation: fmt.Sprintf("expanded acronym %q to %q", tok, expansion),
		})
	}

	// Corpus-term addition: append the strongest corpus candidates to the
	// original query.
	for _, term := range terms {
		if term.Source != SourceCorpus {
			continue
		}
		add(QueryVariation{
			Text:        query + " " + term.Term,
			Score:       term.Confidence,
			Explanation: fmt.Sprintf("added corpus term %q", term.Term),
		})
	}

	sort.SliceStable(variations, func(i, j int) bool {
		return variations[i].Score > variations[j].Score
	})
	return variations
}

// replaceToken substitutes a token inside the original query string,
// matching case-insensitively for Latin script so the user's casing does
// not defeat the rewrite.
func replaceToken(query, token, replacement string, language lang.Language) string {
	if language == lang.Arabic {
		return strings.ReplaceAll(query, token, replacement)
	}

	fields := strings.Fields(query)
	changed := false
	for i, f := range fields {
		if strings.EqualFold(strings.Trim(f, ".,!?;:\"'"), token) {
			fields[i] = replacement
			changed = true
		}
	}
	if !changed {
		return query
	}
	return strings.Join(fields, " ")
}
