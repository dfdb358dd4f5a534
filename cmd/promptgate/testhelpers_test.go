package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/promptgate/internal/llm"
	"github.com/davetashner/promptgate/internal/redact"
	"github.com/davetashner/promptgate/internal/registry"
)

const testConfig = `
BASIC_MODEL:
  model: gpt-4o
  api_key: ${PG_TEST_OPENAI_KEY}
CLAUDE_MODEL:
  model: claude-sonnet-4-5
  api_key: sk-ant-test-key
GEMINI_MODEL:
  model: gemini-2.5-flash
PERPLEXITY_MODEL:
  model: sonar
  api_key: pplx-test-key
  base_url: https://api.perplexity.ai
`

// newTestCmd redirects rootCmd output to buffers and resets every flag.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	resetRootFlags()
	resetAskFlags()
	resetConfigFlags()
	resetServeFlags()
	redact.ResetForTest()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(nil)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})
	return rootCmd, stdout, stderr
}

func resetRootFlags() {
	resetFlagSet(rootCmd.PersistentFlags())
}

func resetServeFlags() {
	resetFlagSet(serveCmd.Flags())
}

// writeConfig writes content to a conf.yaml in a temp dir and returns its
// path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return writeFile(t, t.TempDir(), "conf.yaml", content)
}

// mockBuilder records the kinds built and hands out one mock per kind.
type mockBuilder struct {
	mocks map[registry.Kind]*llm.MockProvider
	built []registry.Kind
	got   map[registry.Kind]registry.Settings
}

func withMockBuilder(t *testing.T, replies map[registry.Kind]llm.MockResponse) *mockBuilder {
	t.Helper()
	mb := &mockBuilder{
		mocks: make(map[registry.Kind]*llm.MockProvider),
		got:   make(map[registry.Kind]registry.Settings),
	}
	for k, r := range replies {
		mb.mocks[k] = llm.NewNamedMockProvider(k.String(), r)
	}

	orig := clientBuilder
	clientBuilder = func(k registry.Kind, s registry.Settings) (llm.Provider, error) {
		mb.built = append(mb.built, k)
		mb.got[k] = s
		if m, ok := mb.mocks[k]; ok {
			return m, nil
		}
		return llm.NewNamedMockProvider(k.String()), nil
	}
	t.Cleanup(func() { clientBuilder = orig })
	return mb
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
