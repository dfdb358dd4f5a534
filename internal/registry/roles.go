package registry

import "strings"

// roleProviders maps agent roles to the logical provider that serves them.
var roleProviders = map[string]string{
	"coordinator": OpenAI.String(),
	"planner":     OpenAI.String(),
	"researcher":  Perplexity.String(),
	"coder":       Gemini.String(),
}

// RoleProvider returns the logical provider name for an agent role. Roles
// without a dedicated provider, including reporter and writer roles, use
// "basic".
func RoleProvider(role string) string {
	if name, ok := roleProviders[strings.ToLower(strings.TrimSpace(role))]; ok {
		return name
	}
	return AliasBasic
}
