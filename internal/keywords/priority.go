package keywords

import "strings"

// PriorityKeywords lists curated domain terms (technical skills first, then
// soft skills) that receive extra weight during extraction and scoring. Order
// matters: the missing-skills backfill walks this slice front to back.
var PriorityKeywords = []string{
	// Languages
	"javascript", "typescript", "python", "java", "go", "golang", "c++", "c#",
	"ruby", "php", "kotlin", "swift", "rust", "scala", "sql",
	// Frontend
	"react", "angular", "vue", "next.js", "redux", "html", "css", "tailwind",
	"sass", "webpack", "vite",
	// Backend / frameworks
	"node", "node.js", "express", "django", "flask", "spring", "spring boot",
	"fastapi", "rails", "laravel", ".net", "graphql", "rest api", "grpc",
	"microservices", "websockets",
	// Data stores
	"mongodb", "postgresql", "mysql", "redis", "elasticsearch", "sqlite",
	"dynamodb", "cassandra", "kafka", "rabbitmq",
	// Cloud / infra
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"ci/cd", "linux", "git", "github", "gitlab", "nginx", "serverless",
	"lambda", "cloudformation", "ansible", "prometheus", "grafana",
	// Data / ML
	"machine learning", "deep learning", "data analysis", "data science",
	"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn", "nlp",
	"computer vision", "etl", "spark", "hadoop", "tableau", "power bi",
	// Practices
	"agile", "scrum", "tdd", "unit testing", "integration testing",
	"design patterns", "system design", "oop", "data structures", "algorithms",
	"api design", "code review", "debugging", "performance optimization",
	"security", "oauth", "jwt",
	// Soft skills
	"leadership", "communication", "teamwork", "collaboration",
	"problem solving", "critical thinking", "time management", "mentoring",
	"project management", "stakeholder management", "adaptability",
	"attention to detail",
}

// softSkills marks the PriorityKeywords entries that are not technical skills.
var softSkills = map[string]struct{}{
	"leadership": {}, "communication": {}, "teamwork": {}, "collaboration": {},
	"problem solving": {}, "critical thinking": {}, "time management": {},
	"mentoring": {}, "project management": {}, "stakeholder management": {},
	"adaptability": {}, "attention to detail": {},
}

var prioritySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(PriorityKeywords))
	for _, kw := range PriorityKeywords {
		set[kw] = struct{}{}
	}
	return set
}()

// IsPriority reports whether term is a curated priority keyword.
func IsPriority(term string) bool {
	_, ok := prioritySet[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// IsTechnicalSkill reports whether term is a priority keyword of the technical
// (non soft-skill) kind. Used to derive target skills from extracted keywords.
func IsTechnicalSkill(term string) bool {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if _, soft := softSkills[normalized]; soft {
		return false
	}
	_, ok := prioritySet[normalized]
	return ok
}
