package ats

// AnalysisModeResumeOnly is the only supported analysis mode: scoring targets
// are inferred from the resume itself, never from a job description.
const AnalysisModeResumeOnly = "resume_only"

// Meta carries diagnostic sub-scores and resolution metadata.
type Meta struct {
	CoverageScore   float64 `json:"coverageScore"`
	DensityScore    float64 `json:"densityScore"`
	SectionScore    float64 `json:"sectionScore"`
	AIAssisted      bool    `json:"aiAssisted"`
	InferredProfile string  `json:"inferredProfile"`
}

// Result is the outcome of one scoring run. It is a pure value with no
// identity or lifecycle beyond the call that produced it.
type Result struct {
	Score              int      `json:"score"`
	MatchedKeywords    []string `json:"matchedKeywords"`
	MissingKeywords    []string `json:"missingKeywords"`
	MissingSkills      []string `json:"missingSkills"`
	Recommendations    []string `json:"recommendations"`
	AnalysisMode       string   `json:"analysisMode"`
	JobDescriptionUsed bool     `json:"jobDescriptionUsed"`
	Meta               Meta     `json:"meta"`
}
