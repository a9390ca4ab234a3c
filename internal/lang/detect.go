// Package lang provides script detection, tokenization, and stop-word
// filtering for the two scripts the engine supports: Latin/English and Arabic.
package lang

import "unicode/utf8"

// Language identifies a supported script.
type Language string

const (
	// English covers Latin-script text.
	English Language = "en"

	// Arabic covers Arabic-script text.
	Arabic Language = "ar"

	// Auto requests heuristic detection.
	Auto Language = "auto"
)

// arabicRatioThreshold is the fraction of Arabic-script runes above which
// a text is classified as Arabic. Whole-string detection is a known
// limitation for short mixed-script queries; callers wanting finer control
// pass an explicit language hint.
const arabicRatioThreshold = 0.1

// IsArabicRune reports whether r falls in one of the Arabic Unicode blocks.
func IsArabicRune(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF: // Arabic
		return true
	case r >= 0x0750 && r <= 0x077F: // Arabic Supplement
		return true
	case r >= 0x08A0 && r <= 0x08FF: // Arabic Extended-A
		return true
	case r >= 0xFB50 && r <= 0xFDFF: // Arabic Presentation Forms-A
		return true
	case r >= 0xFE70 && r <= 0xFEFF: // Arabic Presentation Forms-B
		return true
	}
	return false
}

// Detect classifies text as English or Arabic by the fraction of
// Arabic-script runes over total rune count.
func Detect(text string) Language {
	total := utf8.RuneCountInString(text)
	if total == 0 {
		return English
	}

	arabic := 0
	for _, r := range text {
		if IsArabicRune(r) {
			arabic++
		}
	}

	if float64(arabic)/float64(total) > arabicRatioThreshold {
		return Arabic
	}
	return English
}

// Resolve returns the effective language for text given a caller hint.
// An explicit hint overrides detection; Auto (or anything unrecognized)
// triggers detection.
func Resolve(hint Language, text string) Language {
	switch hint {
	case English, Arabic:
		return hint
	default:
		return Detect(text)
	}
}
