// Package config loads promptgate's provider configuration file and
// resolves ${VAR} placeholders against the process environment.
package config

import "fmt"

// Document is a parsed configuration file: a tree of mappings, sequences
// and scalars keyed by top-level section name.
type Document map[string]any

// FileName is the configuration file looked up in the working directory
// when neither --config nor $PROMPTGATE_CONFIG is given.
const FileName = "conf.yaml"

// EnvPath names the environment variable that overrides FileName.
const EnvPath = "PROMPTGATE_CONFIG"

// ConfigParseError reports a configuration file that could not be read or
// parsed.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("config: parse %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }
