// Package ats computes a heuristic 0-100 ATS score from keyword coverage,
// keyword density, and resume section structure.
package ats

import (
	"context"
	"math"
	"regexp"
	"strings"

	"resumeiq-backend/internal/keywords"
	"resumeiq-backend/internal/targets"
	"resumeiq-backend/internal/textnorm"
)

const (
	extractionKeywordLimit = 120

	maxScoringTargets = 45
	maxKeywordList    = 25
	maxMissingSkills  = 20

	priorityWeight = 2.2
	phraseWeight   = 1.6
	baseWeight     = 1.1

	coverageBlend = 0.55
	densityBlend  = 0.2
	sectionBlend  = 0.25
)

// Scorer computes ATS scores. The resolver (and through it the AI generator)
// is injected so scoring runs are deterministic under test.
type Scorer struct {
	Resolver *targets.Resolver
}

// NewScorer constructs a Scorer around a target resolver.
func NewScorer(resolver *targets.Resolver) *Scorer {
	return &Scorer{Resolver: resolver}
}

// Calculate is the sole scoring entry point. It never fails for malformed or
// absent input: an empty resume yields the fixed zero-score result, and AI
// failures degrade to resume-derived targets. The error return is reserved
// for unexpected internal failures only.
func (s *Scorer) Calculate(ctx context.Context, resumeText string, data *ResumeData) (Result, error) {
	if strings.TrimSpace(resumeText) == "" {
		return emptyResult(), nil
	}

	normalized := textnorm.NormalizeText(resumeText)
	extracted := keywords.Extract(normalized, extractionKeywordLimit)
	set := s.Resolver.Resolve(ctx, normalized, extracted, data.DeclaredSkills())

	loweredResume := strings.ToLower(normalized)
	criticalText := strings.ToLower(textnorm.NormalizeText(data.CriticalSectionText()))
	if criticalText == "" {
		criticalText = loweredResume
	}
	skillsText := strings.ToLower(textnorm.NormalizeText(data.SkillsText()))
	if skillsText == "" {
		skillsText = loweredResume
	}

	scoringTargets := buildScoringTargets(set)

	var matched, missing []string
	var matchedWeight, totalWeight float64
	for _, term := range scoringTargets {
		weight := termWeight(term)
		totalWeight += weight
		if containsTerm(criticalText, term) {
			matched = append(matched, term)
			matchedWeight += weight
		} else {
			missing = append(missing, term)
		}
	}

	if totalWeight <= 0 {
		totalWeight = 1
	}
	coverage := clamp(matchedWeight/totalWeight*100, 0, 100)
	density := densityScore(normalized, matched)
	section := sectionQualityScore(loweredResume)

	missingSkills := collectMissingSkills(set.Skills, skillsText, missing)

	score := int(math.Round(clamp(
		coverage*coverageBlend+density*densityBlend+section*sectionBlend, 0, 100)))

	recommendations := buildRecommendations(missing, missingSkills, section, density)

	return Result{
		Score:              score,
		MatchedKeywords:    truncate(matched, maxKeywordList),
		MissingKeywords:    truncate(missing, maxKeywordList),
		MissingSkills:      missingSkills,
		Recommendations:    recommendations,
		AnalysisMode:       AnalysisModeResumeOnly,
		JobDescriptionUsed: false,
		Meta: Meta{
			CoverageScore:   coverage,
			DensityScore:    density,
			SectionScore:    section,
			AIAssisted:      set.Source == targets.SourceAI,
			InferredProfile: set.InferredProfile,
		},
	}, nil
}

// ExtractKeywords exposes the extractor for diagnostics and standalone use.
func ExtractKeywords(text string, maxKeywords int) []keywords.Candidate {
	return keywords.Extract(text, maxKeywords)
}

func emptyResult() Result {
	return Result{
		Score:              0,
		MatchedKeywords:    []string{},
		MissingKeywords:    []string{},
		MissingSkills:      []string{},
		Recommendations:    []string{"Upload a resume or add resume content to calculate an ATS score."},
		AnalysisMode:       AnalysisModeResumeOnly,
		JobDescriptionUsed: false,
		Meta:               Meta{},
	}
}

// buildScoringTargets merges target keywords and skills into one deduped,
// lowercased list capped at maxScoringTargets.
func buildScoringTargets(set targets.Set) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, maxScoringTargets)
	for _, list := range [][]string{set.Keywords, set.Skills} {
		for _, term := range list {
			normalized := strings.ToLower(strings.TrimSpace(term))
			if normalized == "" {
				continue
			}
			if _, dup := seen[normalized]; dup {
				continue
			}
			seen[normalized] = struct{}{}
			out = append(out, normalized)
			if len(out) == maxScoringTargets {
				return out
			}
		}
	}
	return out
}

func termWeight(term string) float64 {
	switch {
	case keywords.IsPriority(term):
		return priorityWeight
	case strings.Contains(term, " "):
		return phraseWeight
	default:
		return baseWeight
	}
}

// containsTerm tests whole-word presence for single words and plain substring
// presence for phrases, which cross word boundaries unreliably.
func containsTerm(loweredText, term string) bool {
	if strings.Contains(term, " ") {
		return containsSubstring(loweredText, term)
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(term) + `\b`)
	if err != nil {
		return containsSubstring(loweredText, term)
	}
	return re.MatchString(loweredText)
}

func containsSubstring(loweredText, term string) bool {
	return strings.Contains(loweredText, strings.ToLower(term))
}

// densityScore maps matched-keyword mention density to a bounded sub-score.
// Both too-sparse and keyword-stuffed content are penalized: the reward is
// deliberately non-monotonic.
func densityScore(normalizedText string, matched []string) float64 {
	tokens := textnorm.Tokenize(normalizedText)
	if len(tokens) == 0 {
		return 35
	}
	joined := " " + strings.Join(tokens, " ") + " "
	mentions := 0
	for _, term := range matched {
		mentions += countMentions(joined, term)
	}
	pct := float64(mentions) / float64(len(tokens)) * 100
	switch {
	case pct < 1:
		return 35
	case pct > 12:
		return 55
	default:
		return clamp(40+pct*5, 0, 100)
	}
}

// countMentions counts space-delimited occurrences of term inside the padded,
// space-joined token string.
func countMentions(padded, term string) int {
	needle := " " + term + " "
	count := 0
	for i := 0; ; {
		idx := strings.Index(padded[i:], needle)
		if idx < 0 {
			return count
		}
		count++
		// Step past the term but keep the trailing space as the next
		// occurrence's leading boundary.
		i += idx + len(needle) - 1
	}
}

// collectMissingSkills returns target skills absent from the skills-section
// text, backfilled from the priority-keyword list scanned against the joined
// missing-keywords text. The joined scan can match across adjacent keyword
// boundaries; that behavior is intentional.
func collectMissingSkills(targetSkills []string, skillsText string, missingKeywords []string) []string {
	out := make([]string, 0, maxMissingSkills)
	seen := make(map[string]struct{})
	for _, skill := range targetSkills {
		if len(out) == maxMissingSkills {
			return out
		}
		if containsTerm(skillsText, skill) {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}

	missingText := strings.ToLower(strings.Join(missingKeywords, " "))
	for _, kw := range keywords.PriorityKeywords {
		if len(out) == maxMissingSkills {
			break
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		// A skill already present in the skills section is never missing.
		if containsTerm(skillsText, kw) {
			continue
		}
		if containsTerm(missingText, kw) {
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	return out
}

func truncate(list []string, max int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > max {
		return list[:max]
	}
	return list
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
