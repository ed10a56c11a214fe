// Package generate wraps the external text-generation capability used by the
// editor. Every path through the Adapter resolves to a string; callers never
// handle generation errors.
package generate

import (
	"context"
	"fmt"
)

// TextGenerator performs exactly one request per call: no retries, no streaming.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// NewTextGenerator builds the configured provider client. Without an API key
// the capability is unavailable and (nil, nil) is returned.
func NewTextGenerator(s Settings) (TextGenerator, error) {
	if s.APIKey == "" {
		return nil, nil
	}

	switch s.Provider {
	case "", ProviderGemini:
		var opts []GeminiOption
		if s.Model != "" {
			opts = append(opts, WithGeminiModel(s.Model))
		}
		if s.BaseURL != "" {
			opts = append(opts, WithGeminiBaseURL(s.BaseURL))
		}
		return NewGeminiClient(s.APIKey, opts...), nil
	case ProviderOpenAI:
		return NewOpenAIClient(s)
	default:
		return nil, fmt.Errorf("generation provider %s not supported", s.Provider)
	}
}
