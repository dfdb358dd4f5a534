package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/promptgate/internal/llm"
	"github.com/davetashner/promptgate/internal/redact"
	"github.com/davetashner/promptgate/internal/registry"
)

// Registry is the subset of *registry.Registry the tools use.
type Registry interface {
	Client(name string) (llm.Provider, error)
	Cached() []registry.Kind
}

// AskInput is the input schema for the ask MCP tool.
type AskInput struct {
	Provider     string `json:"provider,omitempty" jsonschema:"Provider: openai, basic, claude, gemini, perplexity (default: basic)"`
	Role         string `json:"role,omitempty" jsonschema:"Agent role used to pick a provider when provider is empty (coordinator, planner, researcher, coder)"`
	Prompt       string `json:"prompt" jsonschema:"Prompt to send"`
	SystemPrompt string `json:"system_prompt,omitempty" jsonschema:"Optional system instruction"`
	MaxTokens    int    `json:"max_tokens,omitempty" jsonschema:"Response length limit (0 = provider default)"`
}

// ProvidersInput is the input schema for the providers MCP tool.
type ProvidersInput struct{}

// ProviderInfo describes one supported provider in the providers tool output.
type ProviderInfo struct {
	Name    string `json:"name"`
	Section string `json:"section"`
	Cached  bool   `json:"cached"`
}

type tools struct {
	reg Registry
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all promptgate tools to the MCP server.
func registerTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask",
		Description: "Send a prompt to a configured LLM provider (openai, claude, gemini, perplexity) and return the generated text.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, t.handleAsk)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "providers",
		Description: "List supported LLM providers, their configuration section, and whether a client is already cached.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, t.handleProviders)
}

func (t *tools) handleAsk(ctx context.Context, _ *mcp.CallToolRequest, input AskInput) (*mcp.CallToolResult, any, error) {
	if input.Prompt == "" {
		return nil, nil, errors.New("prompt is required")
	}
	if input.MaxTokens < 0 {
		return nil, nil, fmt.Errorf("max_tokens must be non-negative, got %d", input.MaxTokens)
	}

	name, err := ResolveProvider(input.Provider, input.Role)
	if err != nil {
		return nil, nil, err
	}
	client, err := t.reg.Client(name)
	if err != nil {
		return nil, nil, errors.New(redact.String(err.Error()))
	}

	slog.Debug("mcp ask", "provider", name, "prompt_len", len(input.Prompt))
	resp, err := client.Complete(ctx, llm.Request{
		Prompt:       input.Prompt,
		SystemPrompt: input.SystemPrompt,
		MaxTokens:    input.MaxTokens,
	})
	if err != nil {
		return nil, nil, errors.New(redact.String(err.Error()))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: resp.Content},
		},
	}, nil, nil
}

func (t *tools) handleProviders(_ context.Context, _ *mcp.CallToolRequest, _ ProvidersInput) (*mcp.CallToolResult, any, error) {
	cached := make(map[registry.Kind]bool)
	for _, k := range t.reg.Cached() {
		cached[k] = true
	}

	infos := make([]ProviderInfo, 0, len(registry.Kinds()))
	for _, k := range registry.Kinds() {
		infos = append(infos, ProviderInfo{
			Name:    k.String(),
			Section: k.Section(),
			Cached:  cached[k],
		})
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encoding providers: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}
