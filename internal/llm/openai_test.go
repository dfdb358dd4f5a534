package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/davetashner/promptgate/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Path          string
	Authorization string
	Body          map[string]any
}

// chatServer fakes an OpenAI-compatible /chat/completions endpoint.
func chatServer(t *testing.T, status int, body any, captured *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			captured.Path = r.URL.Path
			captured.Authorization = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&captured.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func chatCompletion(model, content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   model,
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
		"usage": map[string]any{"prompt_tokens": 7, "completion_tokens": 3, "total_tokens": 10},
	}
}

func TestNewOpenAIProvider_NoKeyError(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	p, err := llm.NewOpenAIProvider()
	assert.Nil(t, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewOpenAIProvider_FromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	p, err := llm.NewOpenAIProvider()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.Model())
	assert.Empty(t, p.BaseURL())
	assert.Equal(t, 3, p.MaxRetries())
}

func TestNewPerplexityProvider_Defaults(t *testing.T) {
	p, err := llm.NewPerplexityProvider(llm.WithAPIKey("pplx-test"))
	require.NoError(t, err)
	assert.Equal(t, llm.PerplexityBaseURL, p.BaseURL())
	assert.Equal(t, "sonar", p.Model())
}

func TestNewPerplexityProvider_KeyFromEnv(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "")
	t.Setenv("PPLX_API_KEY", "pplx-env")

	_, err := llm.NewPerplexityProvider()
	assert.NoError(t, err)
}

func TestNewPerplexityProvider_NoKeyError(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "")
	t.Setenv("PPLX_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-should-not-be-used")

	_, err := llm.NewPerplexityProvider()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PERPLEXITY_API_KEY")
}

func TestOpenAIComplete_Success(t *testing.T) {
	var captured capturedRequest
	srv := chatServer(t, http.StatusOK, chatCompletion("gpt-4o-2024-08-06", "hello there"), &captured)

	p, err := llm.NewOpenAIProvider(
		llm.WithAPIKey("sk-test"),
		llm.WithModel("gpt-4o"),
		llm.WithBaseURL(srv.URL),
		llm.WithMaxRetries(0),
	)
	require.NoError(t, err)

	resp, err := p.Complete(context.Background(), llm.Request{Prompt: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "hello there", resp.Content)
	assert.Equal(t, "gpt-4o-2024-08-06", resp.Model)
	assert.Equal(t, 7, resp.Usage.InputTokens)
	assert.Equal(t, 3, resp.Usage.OutputTokens)

	assert.True(t, strings.HasSuffix(captured.Path, "/chat/completions"), "path %q", captured.Path)
	assert.Equal(t, "Bearer sk-test", captured.Authorization)
	assert.Equal(t, "gpt-4o", captured.Body["model"])

	messages, ok := captured.Body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "hi", msg["content"])
}

func TestOpenAIComplete_RequestOverrides(t *testing.T) {
	var captured capturedRequest
	srv := chatServer(t, http.StatusOK, chatCompletion("gpt-4.1", "ok"), &captured)

	p, err := llm.NewOpenAIProvider(
		llm.WithAPIKey("sk-test"),
		llm.WithBaseURL(srv.URL),
		llm.WithMaxRetries(0),
	)
	require.NoError(t, err)

	temp := 0.2
	_, err = p.Complete(context.Background(), llm.Request{
		Prompt:       "hi",
		Model:        "gpt-4.1",
		MaxTokens:    256,
		Temperature:  &temp,
		SystemPrompt: "be brief",
	})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4.1", captured.Body["model"])
	assert.Equal(t, float64(256), captured.Body["max_tokens"])
	assert.Equal(t, 0.2, captured.Body["temperature"])

	messages := captured.Body["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestPerplexityComplete_UsesBaseURL(t *testing.T) {
	var captured capturedRequest
	srv := chatServer(t, http.StatusOK, chatCompletion("sonar-pro", "cited answer"), &captured)

	p, err := llm.NewPerplexityProvider(
		llm.WithAPIKey("pplx-test"),
		llm.WithModel("sonar-pro"),
		llm.WithBaseURL(srv.URL),
		llm.WithMaxRetries(0),
	)
	require.NoError(t, err)

	resp, err := p.Complete(context.Background(), llm.Request{Prompt: "research"})
	require.NoError(t, err)
	assert.Equal(t, "cited answer", resp.Content)
	assert.Equal(t, "Bearer pplx-test", captured.Authorization)
}

func TestOpenAIComplete_APIError(t *testing.T) {
	srv := chatServer(t, http.StatusUnauthorized, map[string]any{
		"error": map[string]any{"message": "bad key", "type": "invalid_request_error"},
	}, nil)

	p, err := llm.NewOpenAIProvider(
		llm.WithAPIKey("sk-test"),
		llm.WithBaseURL(srv.URL),
		llm.WithMaxRetries(0),
	)
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), llm.Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai: completion failed")
}

func TestPerplexityComplete_APIErrorTagged(t *testing.T) {
	srv := chatServer(t, http.StatusInternalServerError, map[string]any{
		"error": map[string]any{"message": "boom"},
	}, nil)

	p, err := llm.NewPerplexityProvider(
		llm.WithAPIKey("pplx-test"),
		llm.WithBaseURL(srv.URL),
		llm.WithMaxRetries(0),
	)
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), llm.Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "perplexity: completion failed")
}

func TestOpenAIComplete_NoChoices(t *testing.T) {
	body := chatCompletion("gpt-4o", "")
	body["choices"] = []map[string]any{}
	srv := chatServer(t, http.StatusOK, body, nil)

	p, err := llm.NewOpenAIProvider(
		llm.WithAPIKey("sk-test"),
		llm.WithBaseURL(srv.URL),
		llm.WithMaxRetries(0),
	)
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), llm.Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
