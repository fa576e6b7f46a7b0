package engine

import (
	"strings"
	"unicode"
)

// tokenize lowercases text and splits it into words, stripping punctuation
// at the edges of each token.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// wordSet builds a membership set from tokenized text.
func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range tokenize(text) {
		set[w] = true
	}
	return set
}

// containsTerm reports whether text mentions term. Multi-word terms match as
// substrings; single words match on word boundaries so "go" does not match
// "good".
func containsTerm(text, term string) bool {
	lower := strings.ToLower(text)
	if strings.ContainsAny(term, " /.()") {
		return strings.Contains(lower, term)
	}
	return wordSet(text)[term]
}

// countTerms counts how many of the given terms appear in text.
func countTerms(text string, terms []string) int {
	lower := strings.ToLower(text)
	set := wordSet(text)
	n := 0
	for _, t := range terms {
		if strings.ContainsAny(t, " /.()") {
			if strings.Contains(lower, t) {
				n++
			}
		} else if set[t] {
			n++
		}
	}
	return n
}

// containsAnyTerm reports whether text mentions at least one of the terms.
func containsAnyTerm(text string, terms []string) bool {
	return firstTerm(text, terms) != ""
}

// firstTerm returns the first of terms mentioned in text, or "".
func firstTerm(text string, terms []string) string {
	lower := strings.ToLower(text)
	set := wordSet(text)
	for _, t := range terms {
		if strings.ContainsAny(t, " /.()") {
			if strings.Contains(lower, t) {
				return t
			}
		} else if set[t] {
			return t
		}
	}
	return ""
}

// sentenceLengths returns the word count of each sentence in text.
func sentenceLengths(text string) []int {
	var lengths []int
	start := 0
	flush := func(end int) {
		seg := strings.TrimSpace(text[start:end])
		if seg != "" {
			lengths = append(lengths, len(strings.Fields(seg)))
		}
	}
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			flush(i)
			start = i + 1
		}
	}
	flush(len(text))
	return lengths
}

// uniqueWordRatio is distinct words over total words, 0 for empty text.
func uniqueWordRatio(text string) float64 {
	words := tokenize(text)
	if len(words) == 0 {
		return 0
	}
	distinct := make(map[string]bool, len(words))
	for _, w := range words {
		distinct[w] = true
	}
	return float64(len(distinct)) / float64(len(words))
}

// keywords extracts the stop-word-filtered distinct words of text.
func keywords(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, w := range tokenize(text) {
		if stopWords[w] || len(w) < 3 || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// hasListStructure reports whether text contains bullet or numbered lines.
func hasListStructure(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") {
			return true
		}
		if len(trimmed) > 1 && trimmed[0] >= '0' && trimmed[0] <= '9' &&
			(trimmed[1] == '.' || trimmed[1] == ')') {
			return true
		}
	}
	return false
}

// clamp keeps a score inside the [0,10] band.
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
