package expand

import (
	"strings"

	"github.com/docuflow/docquery/internal/lang"
)

// documentTypeKeywords maps query words to a canonical document-type filter
// value. Both scripts live in one table; tokens are matched after
// normalization so lookups stay O(1) per token.
var documentTypeKeywords = map[string]string{
	"pdf":          "pdf",
	"doc":          "word",
	"docx":         "word",
	"word":         "word",
	"spreadsheet":  "spreadsheet",
	"excel":        "spreadsheet",
	"xls":          "spreadsheet",
	"xlsx":         "spreadsheet",
	"presentation": "presentation",
	"powerpoint":   "presentation",
	"ppt":          "presentation",
	"image":        "image",
	"photo":        "image",
	"picture":      "image",
	"scan":         "scan",
	"scanned":      "scan",
	"email":        "email",
	"invoice":      "invoice",
	"contract":     "contract",
	"report":       "report",

	"صورة":   "image",
	"مستند":  "document",
	"تقرير":  "report",
	"عقد":    "contract",
	"فاتورة": "invoice",
}

// dateRangeKeywords maps temporal query words to a relative date range.
var dateRangeKeywords = map[string]string{
	"today":     "today",
	"yesterday": "yesterday",
	"recent":    "last-7-days",
	"latest":    "last-7-days",
	"new":       "last-7-days",
	"week":      "last-7-days",
	"month":     "last-30-days",
	"quarter":   "last-90-days",
	"year":      "last-365-days",

	"اليوم": "today",
	"أمس":   "yesterday",
	"حديث":  "last-7-days",
	"أحدث":  "last-7-days",
	"أسبوع": "last-7-days",
	"شهر":   "last-30-days",
	"سنة":   "last-365-days",
}

// suggestFilters maps query tokens onto structured filter suggestions.
// Best effort: an empty result just means the query carried no filter cues.
func suggestFilters(query string, language lang.Language) []SuggestedFilter {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	tokens := lang.Tokenize(query, language)
	var filters []SuggestedFilter
	seen := make(map[string]struct{})

	add := func(ft FilterType, value string) {
		key := string(ft) + "|" + value
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		filters = append(filters, SuggestedFilter{Type: ft, Value: value})
	}

	for _, tok := range tokens {
		if value, ok := documentTypeKeywords[tok]; ok {
			add(FilterDocumentType, value)
		}
		if value, ok := dateRangeKeywords[tok]; ok {
			add(FilterDateRange, value)
		}
	}

	// "by <Name>" is a weak authorship cue worth surfacing in the console.
	if language == lang.English {
		if author := authorAfterBy(query); author != "" {
			add(FilterAuthor, author)
		}
	}
	return filters
}

// authorAfterBy returns the capitalized word sequence following "by", when
// one exists ("reports by John Smith" suggests an author filter).
func authorAfterBy(query string) string {
	fields := strings.Fields(query)
	for i, f := range fields {
		if !strings.EqualFold(f, "by") || i+1 >= len(fields) {
			continue
		}
		var name []string
		for _, next := range fields[i+1:] {
			trimmed := strings.Trim(next, ".,!?;:\"'")
			if trimmed == "" || !isCapitalized(trimmed) {
				break
			}
			name = append(name, trimmed)
		}
		if len(name) > 0 {
			return strings.Join(name, " ")
		}
	}
	return ""
}

func isCapitalized(word string) bool {
	r := []rune(word)
	return len(r) > 0 && r[0] >= 'A' && r[0] <= 'Z'
}
