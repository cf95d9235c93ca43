package targets

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"resumeiq-backend/internal/keywords"
	"resumeiq-backend/internal/llm"
)

func candidates(terms ...string) []keywords.Candidate {
	out := make([]keywords.Candidate, 0, len(terms))
	for i, term := range terms {
		out = append(out, keywords.Candidate{Term: term, Score: float64(len(terms) - i)})
	}
	return out
}

func TestResolveAIPath(t *testing.T) {
	gen := llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return `{"inferredProfile": "Backend Engineer", "targetKeywords": ["Go", "Docker", "go"], "targetSkills": ["Kubernetes"]}`, nil
	})
	r := &Resolver{Generator: gen}

	set := r.Resolve(context.Background(), "resume text", candidates("go"), nil)
	if set.Source != SourceAI {
		t.Fatalf("expected source %q, got %q", SourceAI, set.Source)
	}
	if set.InferredProfile != "Backend Engineer" {
		t.Fatalf("unexpected profile %q", set.InferredProfile)
	}
	if !reflect.DeepEqual(set.Keywords, []string{"go", "docker"}) {
		t.Fatalf("expected deduped lowercased keywords, got %v", set.Keywords)
	}
	if !reflect.DeepEqual(set.Skills, []string{"kubernetes"}) {
		t.Fatalf("unexpected skills %v", set.Skills)
	}
}

func TestResolveAIPathFencedOutput(t *testing.T) {
	gen := llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "```json\n{\"inferredProfile\": \"Data Engineer\", \"targetKeywords\": [\"spark\"]}\n```", nil
	})
	r := &Resolver{Generator: gen}

	set := r.Resolve(context.Background(), "text", nil, nil)
	if set.Source != SourceAI {
		t.Fatalf("expected AI source, got %q", set.Source)
	}
	if !reflect.DeepEqual(set.Keywords, []string{"spark"}) {
		t.Fatalf("unexpected keywords %v", set.Keywords)
	}
	// targetSkills omitted: derived from technical keywords.
	if !reflect.DeepEqual(set.Skills, []string{"spark"}) {
		t.Fatalf("expected skills derived from technical keywords, got %v", set.Skills)
	}
}

func TestResolveAIPathWrappedInProse(t *testing.T) {
	gen := llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return `Here you go: {"targetKeywords": ["react"]} hope that helps`, nil
	})
	r := &Resolver{Generator: gen}

	set := r.Resolve(context.Background(), "text", nil, nil)
	if set.Source != SourceAI {
		t.Fatalf("expected AI source, got %q", set.Source)
	}
}

func TestResolveFallsBackOnError(t *testing.T) {
	gen := llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("rate limited")
	})
	r := &Resolver{Generator: gen}

	set := r.Resolve(context.Background(), "text", candidates("docker", "widgets"), []string{"Python"})
	if set.Source != SourceResume {
		t.Fatalf("expected fallback source, got %q", set.Source)
	}
	if !reflect.DeepEqual(set.Skills, []string{"python", "docker"}) {
		t.Fatalf("expected declared plus technical extracted skills, got %v", set.Skills)
	}
}

func TestResolveFallsBackOnUnparsableOutput(t *testing.T) {
	for _, raw := range []string{"not json at all", "", "{broken", "[1,2,3]"} {
		gen := llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
			return raw, nil
		})
		r := &Resolver{Generator: gen}
		set := r.Resolve(context.Background(), "text", candidates("docker"), nil)
		if set.Source != SourceResume {
			t.Fatalf("raw %q: expected fallback source, got %q", raw, set.Source)
		}
	}
}

func TestResolveFallsBackWhenNoKeywordsSurvive(t *testing.T) {
	gen := llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return `{"inferredProfile": "x", "targetKeywords": ["", "  "]}`, nil
	})
	r := &Resolver{Generator: gen}
	set := r.Resolve(context.Background(), "text", candidates("react"), nil)
	if set.Source != SourceResume {
		t.Fatalf("expected fallback source, got %q", set.Source)
	}
}

func TestResolveNoGeneratorDeterministic(t *testing.T) {
	r := &Resolver{}
	first := r.Resolve(context.Background(), "text", candidates("go", "docker", "widgets"), []string{"Python", "python", "Docker"})
	second := r.Resolve(context.Background(), "text", candidates("go", "docker", "widgets"), []string{"Python", "python", "Docker"})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic fallback, got %v then %v", first, second)
	}
	if first.Source != SourceResume {
		t.Fatalf("expected resume source, got %q", first.Source)
	}
	if !reflect.DeepEqual(first.Skills, []string{"python", "docker", "go"}) {
		t.Fatalf("unexpected skills %v", first.Skills)
	}
	if !reflect.DeepEqual(first.Keywords, []string{"python", "docker", "go", "widgets"}) {
		t.Fatalf("unexpected keywords %v", first.Keywords)
	}
}

func TestResolveKeywordBackfillWhenMergeEmpty(t *testing.T) {
	r := &Resolver{}
	set := r.Resolve(context.Background(), "text", nil, nil)
	if len(set.Keywords) != 0 || len(set.Skills) != 0 {
		t.Fatalf("expected empty set for empty inputs, got %v", set)
	}
}

func TestParsePromptIncludesTopKeywords(t *testing.T) {
	var captured string
	gen := llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		captured = prompt
		return "", errors.New("stop")
	})
	r := &Resolver{Generator: gen}
	r.Resolve(context.Background(), "resume body", candidates("golang", "docker"), nil)
	for _, want := range []string{"golang", "docker", "resume body"} {
		if !strings.Contains(captured, want) {
			t.Fatalf("prompt missing %q:\n%s", want, captured)
		}
	}
}
