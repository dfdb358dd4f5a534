// Copyright 2026 The Promptgate Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// New creates a new MCP server with promptgate's tools registered against
// reg.
func New(version string, reg Registry) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "promptgate",
		Title:   "promptgate LLM router",
		Version: version,
	}, nil)

	registerTools(server, &tools{reg: reg})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, reg Registry, transport mcp.Transport) error {
	server := New(version, reg)
	return server.Run(ctx, transport)
}
