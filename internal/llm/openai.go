package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"

	// PerplexityBaseURL is Perplexity's OpenAI-compatible endpoint.
	PerplexityBaseURL      = "https://api.perplexity.ai"
	defaultPerplexityModel = "sonar"
)

// OpenAIProvider implements Provider against the OpenAI Chat Completions
// API. Any OpenAI-compatible service (Perplexity, local gateways) works by
// pointing it at a different base URL.
type OpenAIProvider struct {
	client     openai.Client
	tag        string
	model      string
	baseURL    string
	maxRetries int
}

var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a provider for the OpenAI API. The key falls
// back to OPENAI_API_KEY.
func NewOpenAIProvider(opts ...Option) (*OpenAIProvider, error) {
	return newOpenAICompatible("openai", "OpenAI", providerConfig{
		model:      defaultOpenAIModel,
		maxRetries: defaultMaxRetries,
	}, []string{"OPENAI_API_KEY"}, opts)
}

// NewPerplexityProvider creates a provider for Perplexity's
// OpenAI-compatible API. The key falls back to PERPLEXITY_API_KEY and the
// base URL defaults to PerplexityBaseURL.
func NewPerplexityProvider(opts ...Option) (*OpenAIProvider, error) {
	return newOpenAICompatible("perplexity", "Perplexity", providerConfig{
		model:      defaultPerplexityModel,
		baseURL:    PerplexityBaseURL,
		maxRetries: defaultMaxRetries,
	}, []string{"PERPLEXITY_API_KEY", "PPLX_API_KEY"}, opts)
}

func newOpenAICompatible(tag, vendor string, defaults providerConfig, envVars []string, opts []Option) (*OpenAIProvider, error) {
	cfg, err := resolveConfig(vendor, defaults, envVars, opts)
	if err != nil {
		return nil, err
	}
	if cfg.baseURL == "" {
		cfg.baseURL = defaults.baseURL
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.apiKey),
		option.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &OpenAIProvider{
		client:     openai.NewClient(clientOpts...),
		tag:        tag,
		model:      cfg.model,
		baseURL:    cfg.baseURL,
		maxRetries: cfg.maxRetries,
	}, nil
}

// Complete sends a chat completion request with an optional system message
// followed by the user prompt.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: completion failed: %w", p.tag, err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New(p.tag + ": completion returned no choices")
	}

	return &Response{
		Content: completion.Choices[0].Message.Content,
		Model:   completion.Model,
		Usage: Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}

// Model returns the default model configured for this provider.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// BaseURL returns the endpoint override, or "" for the SDK default.
func (p *OpenAIProvider) BaseURL() string {
	return p.baseURL
}

// MaxRetries returns the configured max retry count.
func (p *OpenAIProvider) MaxRetries() int {
	return p.maxRetries
}
