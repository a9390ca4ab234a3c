package lang

import (
	"regexp"
	"strings"
	"unicode"
)

// htmlTagRegex matches HTML/XML tags for removal during preprocessing.
var htmlTagRegex = regexp.MustCompile(`<[^>]+>`)

// latinTokenRegex matches lower-cased Latin word tokens.
var latinTokenRegex = regexp.MustCompile(`[a-z0-9]+(?:[_'][a-z0-9]+)*`)

// Clean strips HTML tags and collapses whitespace. Arabic script ranges are
// preserved, as are underscores and apostrophes so compound identifiers like
// custom_term survive into tokenization; everything else that is neither
// letter, digit, nor whitespace becomes a space.
func Clean(text string, language Language) string {
	text = htmlTagRegex.ReplaceAllString(text, " ")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '_' || r == '\'':
			b.WriteRune(r)
		case language == Arabic && IsArabicRune(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits text into word tokens for the given language.
//
// Arabic text is split on whitespace only: Arabic morphology makes
// sub-word splitting counterproductive for frequency analysis, and the
// script has no case to normalize. English text is lower-cased and split
// on non-word boundaries with empty tokens dropped.
func Tokenize(text string, language Language) []string {
	cleaned := Clean(text, language)
	if cleaned == "" {
		return nil
	}

	if language == Arabic {
		return strings.Fields(cleaned)
	}

	return latinTokenRegex.FindAllString(strings.ToLower(cleaned), -1)
}
