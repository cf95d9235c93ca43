// Package llm abstracts the external text-generation providers used for
// AI-assisted target resolution.
package llm

import (
	"context"
	"errors"
)

// Generator produces a JSON completion for a prompt. Implementations may fail,
// time out, or return unparsable text; callers must treat all three the same.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// ErrNoProvider is returned when no provider is configured.
var ErrNoProvider = errors.New("no llm provider configured")

// GeneratorFunc adapts a plain function to the Generator interface. Handy for
// fakes in tests.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// GenerateJSON calls f.
func (f GeneratorFunc) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
