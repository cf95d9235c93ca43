package ats

import (
	"fmt"
	"strings"
)

const (
	maxRecommendedKeywords = 6
	maxRecommendedSkills   = 6

	sectionScoreHintThreshold = 60
	densityScoreHintThreshold = 55
)

// buildRecommendations produces the ordered advice list for a scoring run.
// The first line is always informational; the rest are threshold-gated tips.
func buildRecommendations(missingKeywords, missingSkills []string, sectionScore, densityScore float64) []string {
	recs := []string{
		"Score is based on your resume content alone; targets were inferred from your profile, not a job description.",
	}

	if len(missingKeywords) > 0 {
		sample := missingKeywords
		if len(sample) > maxRecommendedKeywords {
			sample = sample[:maxRecommendedKeywords]
		}
		recs = append(recs, fmt.Sprintf("Work these keywords into your experience bullets where truthful: %s.", strings.Join(sample, ", ")))
	}

	if len(missingSkills) > 0 {
		sample := missingSkills
		if len(sample) > maxRecommendedSkills {
			sample = sample[:maxRecommendedSkills]
		}
		recs = append(recs, fmt.Sprintf("List these skills explicitly in your skills section: %s.", strings.Join(sample, ", ")))
	}

	if sectionScore < sectionScoreHintThreshold {
		recs = append(recs, "Structure your resume with clearly labeled sections (Summary, Experience, Skills, Education) and quantify your impact with numbers.")
	}

	if densityScore < densityScoreHintThreshold {
		recs = append(recs, "Mention your core technologies more often across your summary and experience, without keyword stuffing.")
	}

	return recs
}
