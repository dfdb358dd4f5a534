package llm

import (
	"fmt"
	"os"
	"strings"
)

// defaultMaxRetries is the number of automatic retries on transient errors
// (429 rate-limit, 5xx server errors). Backoff is left to the vendor SDK.
const defaultMaxRetries = 3

// Option configures a provider constructor.
type Option func(*providerConfig)

type providerConfig struct {
	apiKey     string
	model      string
	baseURL    string
	maxRetries int
}

// WithAPIKey sets the API key. If not provided, each provider falls back to
// its vendor's conventional environment variable.
func WithAPIKey(key string) Option {
	return func(c *providerConfig) {
		c.apiKey = key
	}
}

// WithModel overrides the default model for all requests.
func WithModel(model string) Option {
	return func(c *providerConfig) {
		c.model = model
	}
}

// WithBaseURL points the provider at a different API endpoint, such as an
// OpenAI-compatible gateway or a test server.
func WithBaseURL(url string) Option {
	return func(c *providerConfig) {
		c.baseURL = url
	}
}

// WithMaxRetries sets the maximum number of retries for transient errors.
func WithMaxRetries(n int) Option {
	return func(c *providerConfig) {
		c.maxRetries = n
	}
}

// resolveConfig applies opts over the given defaults and fills the API key
// from the first non-empty environment variable in envVars.
func resolveConfig(vendor string, defaults providerConfig, envVars []string, opts []Option) (providerConfig, error) {
	cfg := defaults
	for _, o := range opts {
		o(&cfg)
	}
	cfg.apiKey = strings.TrimSpace(cfg.apiKey)
	cfg.baseURL = strings.TrimSpace(cfg.baseURL)
	if strings.TrimSpace(cfg.model) == "" {
		cfg.model = defaults.model
	}

	for _, name := range envVars {
		if cfg.apiKey != "" {
			break
		}
		cfg.apiKey = strings.TrimSpace(os.Getenv(name))
	}
	if cfg.apiKey == "" {
		return cfg, fmt.Errorf("llm: %s not set and no %s API key provided", strings.Join(envVars, " or "), vendor)
	}
	return cfg, nil
}
