package extract

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxTopics caps the number of topic groups per extraction.
	DefaultMaxTopics = 8

	// maxRelatedPerTopic caps group size during clustering.
	maxRelatedPerTopic = 4

	// minRelatedForTopic is the co-occurrence threshold: a keyword with
	// fewer related terms produces no topic and is silently dropped from
	// the topic list (it still appears in keywords).
	minRelatedForTopic = 2
)

// sentenceDelimiters split text into sentences for co-occurrence analysis.
// The Arabic question mark counts alongside the Latin terminators.
var sentenceDelimiters = func(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '؟'
}

// ClusterTopics groups co-occurring keywords into labeled topics.
//
// For each unvisited keyword, up to four other keywords sharing at least one
// sentence with it are collected; groups of three or more (the seed plus two
// related) emit one topic and mark all members visited. The topic is named
// after the longest word in the group. That is a deliberate policy, not an
// accident: the longest surface form tends to be the most specific one.
func ClusterTopics(keywords []string, text string, maxTopics int) []string {
	if len(keywords) < minRelatedForTopic+1 || text == "" || maxTopics <= 0 {
		return nil
	}

	sentences := strings.FieldsFunc(strings.ToLower(text), sentenceDelimiters)

	visited := make(map[string]bool, len(keywords))
	var topics []string

	for _, seed := range keywords {
		if len(topics) >= maxTopics {
			break
		}
		if visited[seed] {
			continue
		}

		group := []string{seed}
		for _, other := range keywords {
			if len(group) > maxRelatedPerTopic {
				break
			}
			if other == seed || visited[other] {
				continue
			}
			if coOccur(sentences, seed, other) {
				group = append(group, other)
			}
		}

		if len(group)-1 < minRelatedForTopic {
			continue
		}

		for _, member := range group {
			visited[member] = true
		}
		topics = append(topics, longestWord(group))
	}

	return topics
}

// coOccur reports whether both terms appear in at least one shared sentence.
func coOccur(sentences []string, a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	for _, s := range sentences {
		if strings.Contains(s, la) && strings.Contains(s, lb) {
			return true
		}
	}
	return false
}

// longestWord returns the longest member of a group by rune count,
// first match winning ties.
func longestWord(group []string) string {
	longest := group[0]
	longestLen := utf8.RuneCountInString(longest)
	for _, w := range group[1:] {
		if n := utf8.RuneCountInString(w); n > longestLen {
			longest, longestLen = w, n
		}
	}
	return longest
}
