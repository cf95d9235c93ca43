package ats

import "strings"

// Experience is one work or internship entry.
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Project is one project entry.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Education is one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ResumeData is the structured resume supplied by the persistence layer.
// Every field is optional; the scorer degrades to plain-text heuristics when
// structure is absent.
type ResumeData struct {
	Summary        string       `json:"summary"`
	WorkExperience []Experience `json:"workExperience"`
	Projects       []Project    `json:"projects"`
	Internships    []Experience `json:"internships"`
	Education      []Education  `json:"education"`
	Skills         []string     `json:"skills"`
	Certifications []string     `json:"certifications"`
	Achievements   []string     `json:"achievements"`
	Hobbies        []string     `json:"hobbies"`
}

// CriticalSectionText concatenates the zones where keyword presence matters
// most: summary, work experience, projects, and internships.
func (d *ResumeData) CriticalSectionText() string {
	if d == nil {
		return ""
	}
	var parts []string
	add := func(s string) {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	add(d.Summary)
	for _, exp := range d.WorkExperience {
		add(exp.Role)
		add(exp.Description)
	}
	for _, proj := range d.Projects {
		add(proj.Title)
		add(proj.Description)
		add(strings.Join(proj.Technologies, " "))
	}
	for _, intern := range d.Internships {
		add(intern.Role)
		add(intern.Description)
	}
	return strings.Join(parts, "\n")
}

// SkillsText returns the declared skills joined as text, or empty when none
// are declared.
func (d *ResumeData) SkillsText() string {
	if d == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(d.Skills, " "))
}

// DeclaredSkills returns the explicit skills list, nil-safe.
func (d *ResumeData) DeclaredSkills() []string {
	if d == nil {
		return nil
	}
	return d.Skills
}
