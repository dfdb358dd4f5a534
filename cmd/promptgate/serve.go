// Copyright 2026 The Promptgate Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davetashner/promptgate/internal/api"
	"github.com/davetashner/promptgate/internal/registry"
)

// Serve command flags.
var (
	serveAddr     string
	serveProvider string
	serveSource   string
)

// serveCmd runs the HTTP endpoint.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the /fire HTTP endpoint",
	Long: `Serve POST /fire and GET /healthz.

POST /fire accepts {"quote_input": "..."} and replies with
{"source", "quote_input", "output"}. Provider failures are reported in
"output" with status 200. Logs are JSON unless --log-format is set.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8000", "listen address")
	serveCmd.Flags().StringVar(&serveProvider, "provider", api.DefaultProvider, "provider serving /fire")
	serveCmd.Flags().StringVar(&serveSource, "source", api.DefaultSource, "source field reported in responses")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if _, err := registry.ParseKind(serveProvider); err != nil {
		return exitError(ExitInvalidArgs, "%v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, newRegistry())
}

func serve(ctx context.Context, clients api.ClientSource) error {
	srv := api.NewServer(serveAddr, clients,
		api.WithProvider(serveProvider),
		api.WithSource(serveSource),
		api.WithLogger(slog.Default()),
	)
	return srv.Start(ctx)
}
