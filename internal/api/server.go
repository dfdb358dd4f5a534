// Copyright 2026 The Promptgate Authors
// SPDX-License-Identifier: MIT

// Package api exposes the provider registry over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/davetashner/promptgate/internal/llm"
	"github.com/davetashner/promptgate/internal/redact"
	"github.com/davetashner/promptgate/internal/registry"
)

const (
	// DefaultQuote is used when a request omits quote_input.
	DefaultQuote = "Default quote."
	// DefaultSource is reported in every response unless overridden.
	DefaultSource = "bash"
	// DefaultProvider is the logical provider serving /fire.
	DefaultProvider = "openai"

	// RequestIDHeader carries the per-request ID in both directions.
	RequestIDHeader = "X-Request-ID"

	shutdownTimeout = 5 * time.Second
)

// ClientSource hands out LLM clients by logical provider name.
// *registry.Registry satisfies it.
type ClientSource interface {
	Client(name string) (llm.Provider, error)
}

// FireRequest is the /fire request body. A nil QuoteInput means the field
// was absent or null.
type FireRequest struct {
	QuoteInput *string `json:"quote_input"`
}

// FireResponse is the /fire response body.
type FireResponse struct {
	Source     string `json:"source"`
	QuoteInput string `json:"quote_input"`
	Output     string `json:"output"`
}

// Server serves /fire and /healthz.
type Server struct {
	addr     string
	clients  ClientSource
	provider string
	source   string
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithProvider sets the logical provider name used by /fire.
func WithProvider(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.provider = name
		}
	}
}

// WithSource sets the source field reported in responses.
func WithSource(source string) Option {
	return func(s *Server) {
		if source != "" {
			s.source = source
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer returns a Server listening on addr once started.
func NewServer(addr string, clients ClientSource, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		clients:  clients,
		provider: DefaultProvider,
		source:   DefaultSource,
	}
	for _, o := range opts {
		o(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Handler returns the routed handler with request-ID middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /fire", s.handleFire)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.withRequestID(mux)
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.logger.Info("listening", "addr", s.addr, "provider", s.provider)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleFire(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r.Context(), s.logger)

	var req FireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	quote := DefaultQuote
	if req.QuoteInput != nil {
		quote = *req.QuoteInput
	}

	resp := FireResponse{Source: s.source, QuoteInput: quote}
	output, err := s.complete(r.Context(), quote)
	if err != nil {
		logger.Error("completion failed", "provider", s.provider, "error", redact.String(err.Error()))
		output = "❌ Error from " + vendorName(s.provider) + ": " + redact.String(err.Error())
	}
	resp.Output = output

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) complete(ctx context.Context, quote string) (string, error) {
	client, err := s.clients.Client(s.provider)
	if err != nil {
		return "", err
	}
	res, err := client.Complete(ctx, llm.Request{Prompt: quote})
	if err != nil {
		return "", err
	}
	return res.Content, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// vendorName turns a logical provider name into the label used in error
// output. Unknown names are reported verbatim.
func vendorName(provider string) string {
	kind, err := registry.ParseKind(provider)
	if err != nil {
		return provider
	}
	return kind.Vendor()
}
