package extract

import "sort"

// DefaultTopKeywords is the number of keywords returned per document.
const DefaultTopKeywords = 15

// keywordScore pairs a term with its relative frequency.
type keywordScore struct {
	term  string
	score float64
	seen  int // first-seen position, stable tie-break
}

// ScoreKeywords ranks tokens by term frequency and returns the top n terms.
// The score for each term is freq/totalTokens. There is no IDF component:
// single-document calls rank by raw relative frequency, and corpus-level
// significance is handled by the corpus index.
func ScoreKeywords(tokens []string, n int) []string {
	if len(tokens) == 0 || n <= 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	order := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			order[tok] = i
		}
		counts[tok]++
	}

	total := float64(len(tokens))
	scored := make([]keywordScore, 0, len(counts))
	for term, c := range counts {
		scored = append(scored, keywordScore{
			term:  term,
			score: float64(c) / total,
			seen:  order[term],
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].seen < scored[j].seen
	})

	if n > len(scored) {
		n = len(scored)
	}
	keywords := make([]string, n)
	for i := 0; i < n; i++ {
		keywords[i] = scored[i].term
	}
	return keywords
}
