package targets

import (
	"fmt"
	"strings"

	"resumeiq-backend/internal/keywords"
)

const (
	// maxPromptChars bounds how much resume text is embedded in the prompt.
	maxPromptChars = 10000
	// promptKeywordCount is how many extracted terms the prompt includes.
	promptKeywordCount = 30
)

// buildPrompt embeds the truncated resume text and the top extracted keywords
// into a JSON-completion instruction.
func buildPrompt(normalizedText string, extracted []keywords.Candidate) string {
	excerpt := normalizedText
	if len(excerpt) > maxPromptChars {
		excerpt = excerpt[:maxPromptChars]
	}

	terms := make([]string, 0, promptKeywordCount)
	for _, c := range extracted {
		if len(terms) == promptKeywordCount {
			break
		}
		terms = append(terms, c.Term)
	}

	return fmt.Sprintf(`You are an ATS (Applicant Tracking System) expert.
Based on the resume below, infer the candidate's target role and the keywords
and skills an ATS would expect this resume to contain.

Respond with JSON only, in exactly this shape:
{"inferredProfile": "<one-line role description>", "targetKeywords": ["..."], "targetSkills": ["..."]}

Extracted resume keywords: %s

Resume:
%s`, strings.Join(terms, ", "), excerpt)
}
