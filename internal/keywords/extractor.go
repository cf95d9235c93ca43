// Package keywords extracts ranked keyword candidates from resume text using
// n-gram frequency counts boosted by a curated priority-term list.
package keywords

import (
	"sort"
	"strings"

	"resumeiq-backend/internal/textnorm"
)

// DefaultMaxKeywords bounds the result when the caller passes no limit.
const DefaultMaxKeywords = 40

const (
	longTermBoost  = 1.1
	bigramBoost    = 1.35
	trigramBoost   = 1.6
	priorityBonus  = 3.5
	minTermLength  = 3
	longTermLength = 7
)

// Candidate is a scored keyword: one to three space-joined tokens.
type Candidate struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

type scoredTerm struct {
	score     float64
	firstSeen int
}

// Extract returns up to maxKeywords candidates ranked by descending score,
// ties broken by first occurrence. It never fails: empty or unusable input
// yields an empty slice.
func Extract(text string, maxKeywords int) []Candidate {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}

	tokens := textnorm.RemoveStopWords(textnorm.Tokenize(text), StopWords)
	scores := make(map[string]*scoredTerm)
	order := 0
	bump := func(term string, delta float64) {
		entry, seen := scores[term]
		if !seen {
			entry = &scoredTerm{firstSeen: order}
			order++
			scores[term] = entry
		}
		entry.score += delta
	}

	// Unigram frequencies, with a small boost for longer terms.
	unigrams := textnorm.NewFrequencyMap()
	for _, tok := range tokens {
		unigrams.Add(tok)
	}
	for _, term := range unigrams.Terms() {
		boost := 1.0
		if len(term) >= longTermLength {
			boost = longTermBoost
		}
		bump(term, float64(unigrams.Count(term))*boost)
	}

	// Phrase frequencies over the already filtered token sequence. Windows may
	// splice originally non-adjacent words once stop words are removed; this
	// matches the extraction contract.
	for n := 2; n <= 3; n++ {
		grams := textnorm.NewFrequencyMap()
		for i := 0; i+n <= len(tokens); i++ {
			grams.Add(strings.Join(tokens[i:i+n], " "))
		}
		boost := bigramBoost
		if n == 3 {
			boost = trigramBoost
		}
		for _, term := range grams.Terms() {
			bump(term, float64(grams.Count(term))*boost)
		}
	}

	// Priority keywords found anywhere in the raw text get a flat bonus,
	// creating the entry when the n-gram pass never produced it.
	rawLower := strings.ToLower(text)
	for _, kw := range PriorityKeywords {
		if strings.Contains(rawLower, kw) {
			bump(kw, priorityBonus)
		}
	}

	candidates := make([]Candidate, 0, len(scores))
	firstSeen := make(map[string]int, len(scores))
	for term, entry := range scores {
		if len(term) < minTermLength {
			continue
		}
		candidates = append(candidates, Candidate{Term: term, Score: entry.score})
		firstSeen[term] = entry.firstSeen
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return firstSeen[candidates[i].Term] < firstSeen[candidates[j].Term]
	})

	if len(candidates) > maxKeywords {
		candidates = candidates[:maxKeywords]
	}
	return candidates
}
