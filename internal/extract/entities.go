package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/docuflow/docquery/internal/lang"
)

// EntityType classifies a named entity.
type EntityType string

const (
	EntityPerson       EntityType = "PERSON"
	EntityOrganization EntityType = "ORGANIZATION"
	EntityLocation     EntityType = "LOCATION"
	EntityDate         EntityType = "DATE"
	EntityMoney        EntityType = "MONEY"
	EntityMisc         EntityType = "MISC"
)

// NamedEntity is a classified text span. Start and End are rune offsets
// into the source text, half-open [Start, End).
type NamedEntity struct {
	Text       string     `json:"text"`
	Type       EntityType `json:"type"`
	Confidence float64    `json:"confidence"`
	Start      int        `json:"start"`
	End        int        `json:"end"`
}

// ExtractEntities runs the pattern table against text and returns every
// match for the given language. Overlapping spans from different patterns
// are kept as-is; resolving overlaps is the caller's concern, and most
// callers only consume the entity texts.
func ExtractEntities(text string, language lang.Language) []NamedEntity {
	if text == "" {
		return nil
	}

	var entities []NamedEntity

	for _, p := range entityPatterns {
		if p.language != anyLanguage && p.language != language {
			continue
		}
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			match := text[loc[0]:loc[1]]
			if p.entityType == EntityPerson && excludedPerson(match) {
				continue
			}
			entities = append(entities, NamedEntity{
				Text:       match,
				Type:       p.entityType,
				Confidence: p.confidence,
				Start:      runeOffset(text, loc[0]),
				End:        runeOffset(text, loc[1]),
			})
		}
	}

	return entities
}

// excludedPerson reports whether a PERSON match starts with a common
// function word (sentence-initial demonstratives and the like).
func excludedPerson(match string) bool {
	first, _, _ := strings.Cut(match, " ")
	_, excluded := personExclusions[first]
	return excluded
}

// runeOffset converts a byte offset (as produced by regexp matching) into
// a rune offset.
func runeOffset(text string, byteOff int) int {
	return utf8.RuneCountInString(text[:byteOff])
}
