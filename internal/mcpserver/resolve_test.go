package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/promptgate/internal/registry"
)

func TestResolveProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		role     string
		want     string
	}{
		{"defaults to basic", "", "", "basic"},
		{"explicit provider", "claude", "", "claude"},
		{"provider normalized", "  Gemini ", "", "gemini"},
		{"provider wins over role", "claude", "researcher", "claude"},
		{"role researcher", "", "researcher", "perplexity"},
		{"role coder", "", "coder", "gemini"},
		{"role planner", "", "planner", "openai"},
		{"unknown role", "", "reporter", "basic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveProvider(tt.provider, tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveProvider_Unsupported(t *testing.T) {
	_, err := ResolveProvider("mistral", "")
	var uerr *registry.UnsupportedProviderError
	assert.ErrorAs(t, err, &uerr)
}
