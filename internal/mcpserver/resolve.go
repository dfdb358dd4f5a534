// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the provider registry as tools over stdio transport.
package mcpserver

import (
	"strings"

	"github.com/davetashner/promptgate/internal/registry"
)

// ResolveProvider picks the logical provider for a tool call. An explicit
// provider wins over a role; with neither, the "basic" alias is used. The
// result is validated against the supported kinds.
func ResolveProvider(provider, role string) (string, error) {
	name := strings.TrimSpace(provider)
	if name == "" {
		name = registry.RoleProvider(role)
	}
	if _, err := registry.ParseKind(name); err != nil {
		return "", err
	}
	return strings.ToLower(name), nil
}
