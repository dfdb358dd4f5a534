package mcpserver

import (
	"testing"

	"github.com/davetashner/promptgate/internal/registry"
)

func FuzzResolveProvider(f *testing.F) {
	f.Add("", "")
	f.Add("basic", "coder")
	f.Add("OPENAI", "")
	f.Add("open\x00ai", "researcher")
	f.Add(string(make([]byte, 4096)), "")

	f.Fuzz(func(t *testing.T, provider, role string) {
		name, err := ResolveProvider(provider, role)
		if err != nil {
			return
		}
		if _, err := registry.ParseKind(name); err != nil {
			t.Errorf("ResolveProvider returned unsupported name %q", name)
		}
	})
}
