package ats

import "regexp"

// sectionHintGroups lists the section-header phrases an ATS expects to find.
// A group counts as detected when any of its hints appears in the resume text.
var sectionHintGroups = [][]string{
	{"summary", "objective", "profile", "about me"},
	{"experience", "employment", "work history"},
	{"skills", "technologies", "technical skills", "competencies"},
	{"education", "academic", "qualifications"},
	{"projects", "portfolio"},
}

// reNumericImpact matches quantified-impact tokens such as "40", "3.5", "99,9" or "25%".
var reNumericImpact = regexp.MustCompile(`\b\d+([.,]\d+)?%?`)

const (
	sectionPresenceWeight = 0.7
	numericImpactPerHit   = 4.0
	numericImpactCap      = 30.0
)

// sectionQualityScore measures resume structure: the fraction of expected
// section groups present, weighted, plus a capped bonus for quantified impact
// statements. Result is clamped to [0, 100].
func sectionQualityScore(loweredText string) float64 {
	detected := 0
	for _, group := range sectionHintGroups {
		for _, hint := range group {
			if containsSubstring(loweredText, hint) {
				detected++
				break
			}
		}
	}
	presence := float64(detected) / float64(len(sectionHintGroups)) * 100 * sectionPresenceWeight

	hits := len(reNumericImpact.FindAllString(loweredText, -1))
	impact := numericImpactPerHit * float64(hits)
	if impact > numericImpactCap {
		impact = numericImpactCap
	}

	return clamp(presence+impact, 0, 100)
}
