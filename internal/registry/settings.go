package registry

import (
	"fmt"
	"strings"

	"github.com/davetashner/promptgate/internal/config"
)

// Settings are the per-provider values read from a config section.
type Settings struct {
	BaseURL string
	Model   string
	APIKey  string
}

// SettingsFor extracts kind's section from doc. The section must be a mapping
// with non-empty "model" and "api_key" values; "base_url" is optional.
// Non-string scalars are formatted with fmt.Sprint.
func SettingsFor(doc config.Document, kind Kind) (Settings, error) {
	section := kind.Section()
	raw, ok := doc[section]
	if !ok || raw == nil {
		return Settings{}, &MissingSettingsError{Section: section}
	}
	block, ok := raw.(map[string]any)
	if !ok {
		return Settings{}, &InvalidSettingsError{Section: section, Value: raw}
	}

	s := Settings{
		BaseURL: scalar(block["base_url"]),
		Model:   scalar(block["model"]),
		APIKey:  scalar(block["api_key"]),
	}
	if s.Model == "" {
		return Settings{}, &MissingSettingsError{Section: section, Key: "model"}
	}
	if s.APIKey == "" {
		return Settings{}, &MissingSettingsError{Section: section, Key: "api_key"}
	}
	return s, nil
}

func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case map[string]any, []any:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}
