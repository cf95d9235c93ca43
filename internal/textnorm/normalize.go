// Package textnorm provides deterministic text normalization and tokenization
// primitives used by the keyword extraction and scoring pipeline.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	reNonNewlineSpace = regexp.MustCompile(`[^\S\n]+`)
	reManyNewlines    = regexp.MustCompile(`\n{3,}`)
	reNonToken        = regexp.MustCompile(`[^a-z0-9+\-./\s]`)
)

// NormalizeText unifies line breaks, collapses runs of whitespace to a single
// space, and squeezes three or more consecutive newlines down to two.
// It is total: any input, including the empty string, yields a valid result.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = reNonNewlineSpace.ReplaceAllString(s, " ")
	s = reManyNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Tokenize normalizes and lowercases the input, replaces any character outside
// [a-z0-9+\-./] with a space, and splits on whitespace. Empty fields are dropped.
func Tokenize(s string) []string {
	lowered := strings.ToLower(NormalizeText(s))
	cleaned := reNonToken.ReplaceAllString(lowered, " ")
	return strings.Fields(cleaned)
}

// RemoveStopWords filters out tokens with length <= 1 and tokens present in the
// given stop-word set. The set is passed in so this package stays leaf-level;
// the curated domain set lives in the keywords package.
func RemoveStopWords(tokens []string, stopWords map[string]struct{}) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= 1 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// FrequencyMap counts term occurrences while remembering first-seen order, so
// callers can break score ties deterministically by insertion index.
type FrequencyMap struct {
	counts map[string]int
	order  []string
}

// NewFrequencyMap returns an empty FrequencyMap.
func NewFrequencyMap() *FrequencyMap {
	return &FrequencyMap{counts: make(map[string]int)}
}

// Add increments the count for term, recording it on first sight.
func (m *FrequencyMap) Add(term string) {
	if _, seen := m.counts[term]; !seen {
		m.order = append(m.order, term)
	}
	m.counts[term]++
}

// Count returns the occurrence count for term (zero if absent).
func (m *FrequencyMap) Count(term string) int {
	return m.counts[term]
}

// Terms returns all counted terms in first-seen order.
func (m *FrequencyMap) Terms() []string {
	return m.order
}

// Len returns the number of distinct terms.
func (m *FrequencyMap) Len() int {
	return len(m.order)
}
