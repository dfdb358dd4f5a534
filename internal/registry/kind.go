// Package registry resolves logical provider names to cached LLM clients
// built from the configuration file.
package registry

import (
	"fmt"
	"strings"
)

// Kind is one of the supported LLM providers.
type Kind uint8

// Supported providers. The zero value is not a valid Kind.
const (
	OpenAI Kind = iota + 1
	Claude
	Gemini
	Perplexity
)

// AliasBasic is the logical name that resolves to OpenAI.
const AliasBasic = "basic"

// Kinds returns every supported Kind in declaration order.
func Kinds() []Kind {
	return []Kind{OpenAI, Claude, Gemini, Perplexity}
}

// ParseKind maps a logical provider name to a Kind. Matching ignores case and
// surrounding whitespace, and "basic" is accepted as an alias for "openai".
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	if norm == AliasBasic {
		norm = OpenAI.String()
	}
	for _, k := range Kinds() {
		if k.String() == norm {
			return k, nil
		}
	}
	return 0, &UnsupportedProviderError{Name: name}
}

// String returns the logical provider key.
func (k Kind) String() string {
	switch k {
	case OpenAI:
		return "openai"
	case Claude:
		return "claude"
	case Gemini:
		return "gemini"
	case Perplexity:
		return "perplexity"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Section returns the top-level configuration key holding k's settings.
func (k Kind) Section() string {
	switch k {
	case OpenAI:
		return "BASIC_MODEL"
	case Claude:
		return "CLAUDE_MODEL"
	case Gemini:
		return "GEMINI_MODEL"
	case Perplexity:
		return "PERPLEXITY_MODEL"
	default:
		return ""
	}
}

// Vendor returns the human-readable vendor name.
func (k Kind) Vendor() string {
	switch k {
	case OpenAI:
		return "OpenAI"
	case Claude:
		return "Anthropic"
	case Gemini:
		return "Google Gemini"
	case Perplexity:
		return "Perplexity"
	default:
		return k.String()
	}
}
