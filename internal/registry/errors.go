package registry

import (
	"fmt"
	"strings"
)

// UnsupportedProviderError reports a logical provider name that does not map
// to any Kind.
type UnsupportedProviderError struct {
	Name string
}

func (e *UnsupportedProviderError) Error() string {
	names := make([]string, 0, len(Kinds())+1)
	for _, k := range Kinds() {
		names = append(names, k.String())
	}
	names = append(names, AliasBasic)
	return fmt.Sprintf("registry: unsupported LLM type %q (supported: %s)", e.Name, strings.Join(names, ", "))
}

// MissingSettingsError reports a provider section that is absent from the
// configuration or lacks a required key. Key is empty when the whole section
// is missing.
type MissingSettingsError struct {
	Section string
	Key     string
}

func (e *MissingSettingsError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("registry: config section %s is missing", e.Section)
	}
	return fmt.Sprintf("registry: config section %s is missing required key %q", e.Section, e.Key)
}

// InvalidSettingsError reports a provider section that is present but is not
// a mapping.
type InvalidSettingsError struct {
	Section string
	Value   any
}

func (e *InvalidSettingsError) Error() string {
	return fmt.Sprintf("registry: config section %s must be a mapping, got %T", e.Section, e.Value)
}
