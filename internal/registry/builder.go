package registry

import (
	"fmt"

	"github.com/davetashner/promptgate/internal/llm"
)

// Builder constructs the client for kind from its settings.
type Builder func(kind Kind, s Settings) (llm.Provider, error)

// DefaultBuilder builds the vendor SDK client for each Kind.
func DefaultBuilder(kind Kind, s Settings) (llm.Provider, error) {
	opts := []llm.Option{
		llm.WithAPIKey(s.APIKey),
		llm.WithModel(s.Model),
	}
	if s.BaseURL != "" {
		opts = append(opts, llm.WithBaseURL(s.BaseURL))
	}

	var (
		p   llm.Provider
		err error
	)
	// Assign through concrete types so a failed constructor yields a nil
	// interface rather than a typed nil pointer.
	switch kind {
	case OpenAI:
		var c *llm.OpenAIProvider
		if c, err = llm.NewOpenAIProvider(opts...); err == nil {
			p = c
		}
	case Claude:
		var c *llm.AnthropicProvider
		if c, err = llm.NewAnthropicProvider(opts...); err == nil {
			p = c
		}
	case Gemini:
		var c *llm.GeminiProvider
		if c, err = llm.NewGeminiProvider(opts...); err == nil {
			p = c
		}
	case Perplexity:
		var c *llm.OpenAIProvider
		if c, err = llm.NewPerplexityProvider(opts...); err == nil {
			p = c
		}
	default:
		return nil, fmt.Errorf("registry: no builder for %s", kind)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
