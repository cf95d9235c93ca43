// Package targets decides which keywords and skills a resume is expected to
// contain, either with AI assistance or derived from the resume itself.
package targets

import (
	"context"

	"resumeiq-backend/internal/keywords"
	"resumeiq-backend/internal/llm"
	"resumeiq-backend/internal/shared/telemetry"
)

const (
	// SourceAI tags target sets produced by the AI path.
	SourceAI = "ai"
	// SourceResume tags target sets derived from the resume alone.
	SourceResume = "resume"

	maxTargetKeywords = 40
	maxTargetSkills   = 25
	maxDeclaredSkills = 30
	fallbackProfile   = "Derived from resume content"
)

// Set holds the expected keywords and skills for one scoring request. Sets are
// built fresh per request and never persisted.
type Set struct {
	Source          string
	InferredProfile string
	Keywords        []string
	Skills          []string
}

// Resolver derives target sets. Generator is optional: when nil (no API key
// configured) resolution always takes the resume-derived path. The generator
// is injected rather than held as package state so tests can substitute fakes.
type Resolver struct {
	Generator llm.Generator
}

// Resolve returns the target set for a resume. AI enrichment is best-effort:
// any provider error, timeout, or unparsable output falls through to the
// resume-derived path and is never surfaced as an error.
func (r *Resolver) Resolve(ctx context.Context, normalizedText string, extracted []keywords.Candidate, declaredSkills []string) Set {
	if r != nil && r.Generator != nil {
		if set, ok := r.resolveWithAI(ctx, normalizedText, extracted); ok {
			return set
		}
	}
	return r.resolveFromResume(extracted, declaredSkills)
}

func (r *Resolver) resolveWithAI(ctx context.Context, normalizedText string, extracted []keywords.Candidate) (Set, bool) {
	raw, err := r.Generator.GenerateJSON(ctx, buildPrompt(normalizedText, extracted))
	if err != nil {
		telemetry.Info("targets.ai_fallback", map[string]any{
			"reason": "generate_failed",
			"error":  err.Error(),
		})
		return Set{}, false
	}

	parsed, ok := parseAITargets(raw)
	if !ok {
		telemetry.Info("targets.ai_fallback", map[string]any{
			"reason": "unparsable_output",
		})
		return Set{}, false
	}

	targetKeywords := dedupeLower(parsed.TargetKeywords, maxTargetKeywords)
	if len(targetKeywords) == 0 {
		telemetry.Info("targets.ai_fallback", map[string]any{
			"reason": "no_target_keywords",
		})
		return Set{}, false
	}

	targetSkills := dedupeLower(parsed.TargetSkills, maxTargetSkills)
	if len(targetSkills) == 0 {
		// Model omitted skills; keep the technical subset of its keywords.
		for _, kw := range targetKeywords {
			if keywords.IsTechnicalSkill(kw) {
				targetSkills = append(targetSkills, kw)
				if len(targetSkills) == maxTargetSkills {
					break
				}
			}
		}
	}

	profile := parsed.InferredProfile
	if profile == "" {
		profile = fallbackProfile
	}

	return Set{
		Source:          SourceAI,
		InferredProfile: profile,
		Keywords:        targetKeywords,
		Skills:          targetSkills,
	}, true
}

func (r *Resolver) resolveFromResume(extracted []keywords.Candidate, declaredSkills []string) Set {
	skills := dedupeLower(declaredSkills, maxDeclaredSkills)

	extractedTerms := make([]string, 0, len(extracted))
	for _, c := range extracted {
		extractedTerms = append(extractedTerms, c.Term)
	}
	for _, term := range extractedTerms {
		if keywords.IsTechnicalSkill(term) {
			skills = append(skills, term)
		}
	}
	skills = dedupeLower(skills, maxTargetSkills)

	merged := append(append([]string{}, skills...), extractedTerms...)
	targetKeywords := dedupeLower(merged, maxTargetKeywords)
	if len(targetKeywords) == 0 {
		targetKeywords = dedupeLower(extractedTerms, maxTargetKeywords)
	}

	return Set{
		Source:          SourceResume,
		InferredProfile: fallbackProfile,
		Keywords:        targetKeywords,
		Skills:          skills,
	}
}
