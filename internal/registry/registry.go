// Copyright 2026 The Promptgate Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/davetashner/promptgate/internal/config"
	"github.com/davetashner/promptgate/internal/llm"
	"github.com/davetashner/promptgate/internal/redact"
)

// Loader reads and resolves the configuration file at path.
type Loader func(path string) (config.Document, error)

// Registry hands out one shared llm.Provider per Kind. Clients are built on
// first use from the configuration file and cached for the registry's
// lifetime; they are never evicted or rebuilt, so credential changes need a
// new Registry.
//
// A Registry is safe for concurrent use. Concurrent first requests for the
// same Kind share one config read and one construction.
type Registry struct {
	path   string
	load   Loader
	build  Builder
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[Kind]llm.Provider
	group singleflight.Group
}

// Option configures a Registry.
type Option func(*Registry)

// WithLoader replaces config.Load.
func WithLoader(l Loader) Option {
	return func(r *Registry) {
		r.load = l
	}
}

// WithBuilder replaces DefaultBuilder.
func WithBuilder(b Builder) Option {
	return func(r *Registry) {
		r.build = b
	}
}

// WithLogger sets the logger used for cache-miss diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// New returns an empty Registry that reads settings from the config file at
// path.
func New(path string, opts ...Option) *Registry {
	r := &Registry{
		path:  path,
		load:  config.Load,
		build: DefaultBuilder,
		cache: make(map[Kind]llm.Provider),
	}
	for _, o := range opts {
		o(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Path returns the configuration file the registry reads.
func (r *Registry) Path() string {
	return r.path
}

// Client returns the cached client for the logical provider name, building
// it on first use. name is one of "openai", "claude", "gemini",
// "perplexity", or the alias "basic".
//
// Errors are *UnsupportedProviderError for unknown names,
// *config.ConfigParseError when the file cannot be read, and
// *MissingSettingsError when the provider's section is incomplete. Failed
// builds are not cached.
func (r *Registry) Client(name string) (llm.Provider, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	if p, ok := r.cached(kind); ok {
		return p, nil
	}

	v, err, _ := r.group.Do(kind.String(), func() (any, error) {
		// Another flight may have finished between the cache check above
		// and joining this one.
		if p, ok := r.cached(kind); ok {
			return p, nil
		}

		p, err := r.construct(kind)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[kind] = p
		r.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(llm.Provider), nil
}

// Cached reports which kinds currently have a client, in declaration order.
func (r *Registry) Cached() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Kind
	for _, k := range Kinds() {
		if _, ok := r.cache[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

func (r *Registry) cached(kind Kind) (llm.Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.cache[kind]
	return p, ok
}

func (r *Registry) construct(kind Kind) (llm.Provider, error) {
	r.logger.Debug("building LLM client", "provider", kind.String(), "config", r.path)

	doc, err := r.load(r.path)
	if err != nil {
		return nil, err
	}
	settings, err := SettingsFor(doc, kind)
	if err != nil {
		return nil, err
	}
	redact.Register(settings.APIKey)

	p, err := r.build(kind, settings)
	if err != nil {
		return nil, fmt.Errorf("registry: build %s client: %w", kind, err)
	}
	if p == nil {
		return nil, fmt.Errorf("registry: build %s client: builder returned no client", kind)
	}

	r.logger.Info("LLM client ready", "provider", kind.String(), "model", settings.Model)
	return p, nil
}
