// Package dictionary holds the per-language synonym and acronym mappings
// used for query expansion: built-ins seeded at construction, user additions,
// and acronym definitions discovered in corpus text.
package dictionary

import (
	"strings"

	"github.com/docuflow/docquery/internal/lang"
)

// Source records where a mapping came from. User entries outrank built-ins
// on ranking ties; context entries are corpus-discovered acronym definitions.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceUser    Source = "user"
	SourceContext Source = "context"
)

// Entry is one term's expansion candidates, in priority order.
type Entry struct {
	Expansions []string
	Source     Source
}

// Store maps terms and acronyms to expansion candidates, partitioned by
// language. Lookups are case-insensitive for Latin script. Entries are only
// ever added or overridden, never removed.
//
// Store is not safe for concurrent use; the engine serializes access.
type Store struct {
	synonyms map[lang.Language]map[string]Entry
	acronyms map[lang.Language]map[string]Entry
}

// NewStore creates a Store seeded with the built-in dictionaries.
func NewStore() *Store {
	s := NewEmptyStore()
	for language, mappings := range builtinSynonyms {
		for term, expansions := range mappings {
			s.add(s.synonyms, language, term, expansions, SourceBuiltin)
		}
	}
	for language, mappings := range builtinAcronyms {
		for acr, expansions := range mappings {
			s.add(s.acronyms, language, acr, expansions, SourceBuiltin)
		}
	}
	return s
}

// NewEmptyStore creates a Store with no built-ins. Used by tests and by
// callers injecting their own dictionaries.
func NewEmptyStore() *Store {
	return &Store{
		synonyms: map[lang.Language]map[string]Entry{
			lang.English: {},
			lang.Arabic:  {},
		},
		acronyms: map[lang.Language]map[string]Entry{
			lang.English: {},
			lang.Arabic:  {},
		},
	}
}

// AddSynonym appends or overrides a user synonym mapping. The language is
// inferred from the term's script.
func (s *Store) AddSynonym(term string, expansions []string) {
	s.add(s.synonyms, lang.Detect(term), term, expansions, SourceUser)
}

// AddAcronym appends or overrides a user acronym mapping.
func (s *Store) AddAcronym(acronym string, expansions []string) {
	s.add(s.acronyms, lang.Detect(acronym), acronym, expansions, SourceUser)
}

// AddContextAcronym records an acronym definition discovered in corpus text
// (the `Expansion Phrase (ACRONYM)` pattern). A user entry for the same
// acronym is never downgraded.
func (s *Store) AddContextAcronym(acronym, expansion string) {
	language := lang.Detect(acronym)
	key := normalizeKey(acronym, language)
	if existing, ok := s.acronyms[language][key]; ok && existing.Source == SourceUser {
		return
	}
	s.add(s.acronyms, language, acronym, []string{expansion}, SourceContext)
}

// Synonyms looks up synonym expansions for a term.
func (s *Store) Synonyms(term string, language lang.Language) (Entry, bool) {
	e, ok := s.synonyms[language][normalizeKey(term, language)]
	return e, ok
}

// Acronyms looks up acronym expansions for a term.
func (s *Store) Acronyms(term string, language lang.Language) (Entry, bool) {
	e, ok := s.acronyms[language][normalizeKey(term, language)]
	return e, ok
}

// SynonymCount returns the number of synonym entries for a language.
func (s *Store) SynonymCount(language lang.Language) int {
	return len(s.synonyms[language])
}

// AcronymCount returns the number of acronym entries for a language.
func (s *Store) AcronymCount(language lang.Language) int {
	return len(s.acronyms[language])
}

func (s *Store) add(m map[lang.Language]map[string]Entry, language lang.Language, term string, expansions []string, source Source) {
	if term == "" || len(expansions) == 0 {
		return
	}
	if m[language] == nil {
		m[language] = map[string]Entry{}
	}
	m[language][normalizeKey(term, language)] = Entry{
		Expansions: append([]string(nil), expansions...),
		Source:     source,
	}
}

// normalizeKey lower-cases Latin keys; Arabic has no case.
func normalizeKey(term string, language lang.Language) string {
	term = strings.TrimSpace(term)
	if language == lang.Arabic {
		return term
	}
	return strings.ToLower(term)
}
