package targets

import (
	"strings"
	"testing"

	"resumeiq-backend/internal/keywords"
)

func TestBuildPromptTruncatesResumeText(t *testing.T) {
	long := strings.Repeat("a", maxPromptChars+500)
	prompt := buildPrompt(long, nil)
	if strings.Contains(prompt, strings.Repeat("a", maxPromptChars+1)) {
		t.Fatal("expected resume text truncated at the prompt limit")
	}
	if !strings.Contains(prompt, strings.Repeat("a", maxPromptChars)) {
		t.Fatal("expected the first 10000 chars to be embedded")
	}
}

func TestBuildPromptLimitsKeywordCount(t *testing.T) {
	cands := make([]keywords.Candidate, 0, promptKeywordCount+10)
	for i := 0; i < promptKeywordCount+10; i++ {
		cands = append(cands, keywords.Candidate{Term: "term" + strings.Repeat("x", i)})
	}
	prompt := buildPrompt("text", cands)
	if strings.Contains(prompt, cands[promptKeywordCount].Term+",") || strings.HasSuffix(prompt, cands[len(cands)-1].Term) {
		t.Fatal("expected only the top keywords in the prompt")
	}
	if !strings.Contains(prompt, cands[0].Term) {
		t.Fatal("expected top keyword in the prompt")
	}
}

func TestDedupeLowerCaps(t *testing.T) {
	in := []string{"A", "b", "a", " C ", "", "d"}
	got := dedupeLower(in, 3)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestParseAITargetsVariants(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{name: "plain", raw: `{"targetKeywords":["go"]}`, ok: true},
		{name: "fenced", raw: "```json\n{\"targetKeywords\":[\"go\"]}\n```", ok: true},
		{name: "prose_wrapped", raw: `sure! {"targetKeywords":["go"]} done`, ok: true},
		{name: "empty", raw: "", ok: false},
		{name: "truncated", raw: `{"targetKeywords":["go"`, ok: false},
		{name: "array", raw: `["go"]`, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, ok := parseAITargets(tc.raw)
			if ok != tc.ok {
				t.Fatalf("parseAITargets(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			}
			if ok && len(parsed.TargetKeywords) != 1 {
				t.Fatalf("unexpected keywords %v", parsed.TargetKeywords)
			}
		})
	}
}
