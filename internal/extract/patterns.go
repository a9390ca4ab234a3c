package extract

import (
	"regexp"

	"github.com/docuflow/docquery/internal/lang"
)

// Per-type base confidences. Pattern matching is precise for numeric forms
// and increasingly speculative for names, so confidence steps down by type.
const (
	dateConfidence   = 0.9
	moneyConfidence  = 0.8
	orgConfidence    = 0.7
	personConfidence = 0.6
)

// anyLanguage marks a pattern that applies regardless of detected script.
const anyLanguage = lang.Language("")

// entityPattern is one row of the matcher table. Patterns are evaluated in
// table order; overlapping matches from different rows are kept as-is.
type entityPattern struct {
	language   lang.Language
	entityType EntityType
	re         *regexp.Regexp
	confidence float64
}

const englishMonths = `January|February|March|April|May|June|July|August|September|October|November|December`

// entityPatterns is the ordered matcher table. Adding a language means
// adding rows, not branches.
var entityPatterns = []entityPattern{
	// Dates: numeric forms are script-neutral.
	{anyLanguage, EntityDate, regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`), dateConfidence},
	{anyLanguage, EntityDate, regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`), dateConfidence},
	{lang.English, EntityDate, regexp.MustCompile(`\b(?:` + englishMonths + `)\s+\d{1,2}(?:,\s*|\s+)\d{4}\b`), dateConfidence},
	{lang.English, EntityDate, regexp.MustCompile(`\b\d{1,2}\s+(?:` + englishMonths + `)\s+\d{4}\b`), dateConfidence},

	// Money.
	{lang.English, EntityMoney, regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d+)?`), moneyConfidence},
	{lang.English, EntityMoney, regexp.MustCompile(`\b\d+(?:\.\d+)?\s?(?:USD|dollars?)\b`), moneyConfidence},
	{lang.Arabic, EntityMoney, regexp.MustCompile(`\d+(?:[.,]\d+)?\s*(?:دولار|ريال|دينار|درهم)`), moneyConfidence},

	// Organizations: capitalized run ending in a corporate suffix, or an
	// Arabic institutional prefix followed by a name.
	{lang.English, EntityOrganization, regexp.MustCompile(`\b(?:[A-Z][a-zA-Z]+\s+)+(?:Corp|Corporation|Inc|Incorporated|Ltd|Limited|LLC|Company|Group|University|Institute|College|Ministry|Department|Agency|Authority|Bank|Foundation)\b`), orgConfidence},
	{lang.Arabic, EntityOrganization, regexp.MustCompile(`(?:شركة|جامعة|وزارة|مؤسسة|معهد|هيئة)\s+[\x{0600}-\x{06FF}]+(?:\s+[\x{0600}-\x{06FF}]+)?`), orgConfidence},

	// Persons: weakest signal, filtered afterwards against common sentence
	// openers (see personExclusions).
	{lang.English, EntityPerson, regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`), personConfidence},
	{lang.Arabic, EntityPerson, regexp.MustCompile(`\b[A-Z][a-z]*\s+[\x{0600}-\x{06FF}]+(?:\s+[\x{0600}-\x{06FF}]+)?`), personConfidence},
	{lang.Arabic, EntityPerson, regexp.MustCompile(`(?:عبد|أبو|ابن|بن)\s+[\x{0600}-\x{06FF}]+`), personConfidence},
}

// personExclusions suppresses the obvious PERSON false positives: matches
// whose first word is a sentence-initial function word.
var personExclusions = map[string]struct{}{
	"The": {}, "This": {}, "That": {}, "These": {}, "Those": {},
	"There": {}, "Then": {}, "They": {}, "When": {}, "Where": {},
	"What": {}, "Which": {}, "While": {}, "After": {}, "Before": {},
	"However": {}, "Although": {}, "Because": {}, "During": {},
	"Many": {}, "Some": {}, "Most": {}, "Each": {}, "Every": {},
	"Our": {}, "Your": {}, "Their": {}, "His": {}, "Her": {},
	"New": {}, "All": {},
}
