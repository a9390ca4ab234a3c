package lang

import (
	"strings"
	"unicode/utf8"
)

// englishStopwords is the built-in English function-word set.
var englishStopwords = buildStopwordSet([]string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "up", "about", "into", "through", "during",
	"before", "after", "above", "below", "between", "out", "off", "over",
	"under", "again", "further", "then", "once", "here", "there", "when",
	"where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "only", "own", "same", "than", "too",
	"very", "can", "will", "just", "should", "now", "this", "that", "these",
	"those", "is", "are", "was", "were", "be", "been", "being", "have",
	"has", "had", "having", "do", "does", "did", "doing", "would", "could",
	"not", "what", "which", "who", "whom", "its", "it", "as", "if", "while",
	"because", "until", "against", "their", "them", "they", "you", "your",
	"his", "her", "she", "him", "our", "we",
})

// arabicStopwords is the built-in Arabic closed-class set.
var arabicStopwords = buildStopwordSet([]string{
	"من", "في", "على", "إلى", "عن", "مع", "هذا", "هذه", "ذلك", "تلك",
	"التي", "الذي", "الذين", "كان", "كانت", "يكون", "تكون", "هو", "هي",
	"هم", "هن", "أن", "إن", "أو", "ثم", "لكن", "لا", "ما", "لم", "لن",
	"قد", "كل", "بعض", "غير", "بين", "حتى", "إذا", "عند", "عندما", "منذ",
	"حيث", "كيف", "لماذا", "متى", "أين", "هل", "نحن", "أنا", "أنت", "له",
	"لها", "لهم", "فيه", "فيها", "عليه", "عليها", "منه", "منها", "به",
	"بها", "وهو", "وهي", "كما", "أيضا", "بعد", "قبل", "الآن",
})

func buildStopwordSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = struct{}{}
	}
	return m
}

// minTokenRunes is the shortest token kept after stop-word filtering.
const minTokenRunes = 3

// FilterStopwords removes stop words (case-insensitive) and tokens shorter
// than three runes. Rune length matters: two-letter Arabic particles occupy
// four bytes.
func FilterStopwords(tokens []string, language Language) []string {
	set := englishStopwords
	if language == Arabic {
		set = arabicStopwords
	}

	result := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < minTokenRunes {
			continue
		}
		if _, stop := set[strings.ToLower(tok)]; stop {
			continue
		}
		result = append(result, tok)
	}
	return result
}

// IsStopword reports whether a single token is in the language's stop set.
func IsStopword(token string, language Language) bool {
	set := englishStopwords
	if language == Arabic {
		set = arabicStopwords
	}
	_, ok := set[strings.ToLower(token)]
	return ok
}
