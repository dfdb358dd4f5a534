// Copyright 2026 The Promptgate Authors
// SPDX-License-Identifier: MIT

// Package redact strips credentials from strings before they reach logs,
// HTTP responses, or error messages.
package redact

import (
	"cmp"
	"os"
	"slices"
	"strings"
	"sync"
)

// Placeholder replaces every redacted value.
const Placeholder = "[REDACTED]"

// minSecretLen guards against false positives from very short values.
const minSecretLen = 4

// sensitiveEnvVars lists environment variables whose values must never
// appear in output. Keys loaded from the config file are added at runtime
// with Register.
var sensitiveEnvVars = []string{
	"OPENAI_API_KEY",
	"ANTHROPIC_API_KEY",
	"GEMINI_API_KEY",
	"GOOGLE_API_KEY",
	"PERPLEXITY_API_KEY",
	"PPLX_API_KEY",
	"PROMPTGATE_TOKEN",
}

var (
	mu         sync.RWMutex
	envSecrets []string
	registered = map[string]struct{}{}
	envOnce    sync.Once
)

func loadEnvSecrets() {
	for _, envVar := range sensitiveEnvVars {
		if val := os.Getenv(envVar); len(val) >= minSecretLen {
			envSecrets = append(envSecrets, val)
		}
	}
}

// Register adds secret to the set of values String removes. Values shorter
// than four characters are ignored.
func Register(secret string) {
	if len(secret) < minSecretLen {
		return
	}
	mu.Lock()
	registered[secret] = struct{}{}
	mu.Unlock()
}

// ResetForTest clears cached and registered secrets so tests can change
// env vars with t.Setenv between calls.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	envSecrets = nil
	registered = map[string]struct{}{}
	envOnce = sync.Once{}
}

// String replaces every known secret in s with Placeholder. Environment
// values are read once, on first call.
func String(s string) string {
	mu.Lock()
	envOnce.Do(loadEnvSecrets)
	mu.Unlock()

	for _, secret := range secrets() {
		s = strings.ReplaceAll(s, secret, Placeholder)
	}
	return s
}

// secrets returns every known secret, longest first, so a secret that is a
// prefix of another never masks only part of the longer one.
func secrets() []string {
	mu.RLock()
	defer mu.RUnlock()

	all := make([]string, 0, len(envSecrets)+len(registered))
	all = append(all, envSecrets...)
	for secret := range registered {
		all = append(all, secret)
	}
	slices.SortFunc(all, func(a, b string) int {
		if n := cmp.Compare(len(b), len(a)); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
	return all
}
