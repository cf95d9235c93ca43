package main

// Score a resume file from the command line:
//   go run ./cmd/atscore -resume resume.pdf
//   go run ./cmd/atscore -resume resume.docx -keywords-only

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resumeiq-backend/internal/ats"
	"resumeiq-backend/internal/extract"
	"resumeiq-backend/internal/llm"
	"resumeiq-backend/internal/llm/gemini"
	"resumeiq-backend/internal/llm/openrouter"
	"resumeiq-backend/internal/shared/config"
	"resumeiq-backend/internal/targets"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume file (pdf, docx, or txt)")
	keywordsOnly := flag.Bool("keywords-only", false, "Print extracted keywords instead of a full score")
	limit := flag.Int("limit", 40, "Maximum keywords to print with -keywords-only")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider (gemini, openrouter, or none)")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	outPath := flag.String("out", "", "Path to write JSON output (optional)")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}

	resumeText, err := readResumeText(*resumePath)
	if err != nil {
		exitErr(err.Error())
	}

	var payload any
	if *keywordsOnly {
		payload = map[string]any{
			"keywords": ats.ExtractKeywords(resumeText, *limit),
		}
	} else {
		scorer := ats.NewScorer(&targets.Resolver{Generator: buildGenerator(*provider, *model)})
		result, err := scorer.Calculate(context.Background(), resumeText, nil)
		if err != nil {
			exitErr(fmt.Sprintf("calculate score: %v", err))
		}
		payload = result
	}

	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	_, _ = os.Stdout.Write(pretty)
	_, _ = os.Stdout.Write([]byte("\n"))
}

func readResumeText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read resume: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return string(raw), nil
	case ".pdf":
		return extract.ExtractTextFromBytes(context.Background(), raw, "application/pdf", filepath.Base(path))
	case ".docx":
		return extract.ExtractTextFromBytes(context.Background(), raw, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", filepath.Base(path))
	default:
		return "", fmt.Errorf("unsupported resume file type: %s", filepath.Ext(path))
	}
}

func buildGenerator(provider, model string) llm.Generator {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "gemini":
		client, err := gemini.NewClient(context.Background(), os.Getenv("GEMINI_API_KEY"), model)
		if err != nil {
			exitErr(fmt.Sprintf("gemini client: %v", err))
		}
		return client
	case "openrouter":
		client, err := openrouter.NewClient(os.Getenv("OPENROUTER_API_KEY"), model)
		if err != nil {
			exitErr(fmt.Sprintf("openrouter client: %v", err))
		}
		return client
	default:
		return nil
	}
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
