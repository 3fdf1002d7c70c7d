// Package persona implements persona detection: keyword scoring, project
// type classification, the rule engine, the optional AI classifier, and the
// detector that combines them.
package persona

import (
	"strings"
	"unicode"
)

// Score counts matches of terms in text, case-insensitively. Single-word
// terms count non-overlapping whole-word occurrences; multi-word terms count
// once when contained as a substring. Empty text or terms score 0.
func Score(text string, terms []string) int {
	if text == "" || len(terms) == 0 {
		return 0
	}
	lower := strings.ToLower(text)

	total := 0
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}
		if strings.ContainsRune(t, ' ') {
			if strings.Contains(lower, t) {
				total++
			}
			continue
		}
		total += countWholeWord(lower, t)
	}
	return total
}

// countWholeWord counts non-overlapping occurrences of word in s where both
// neighbors are non-alphanumeric. Both inputs must already be lowercase.
func countWholeWord(s, word string) int {
	count := 0
	for start := 0; ; {
		idx := strings.Index(s[start:], word)
		if idx < 0 {
			break
		}
		pos := start + idx
		end := pos + len(word)
		if isBoundary(s, pos-1) && isBoundary(s, end) {
			count++
		}
		start = end
	}
	return count
}

// isBoundary reports whether the byte at i is outside s or not alphanumeric.
func isBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	r := rune(s[i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
