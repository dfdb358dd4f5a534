package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path and expands ${VAR} placeholders
// from the process environment. Files ending in .toml are decoded as TOML,
// everything else as YAML. An empty file yields an empty Document.
//
// Load never caches: each call re-reads the file.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied config path
	if err != nil {
		return nil, &ConfigParseError{Path: path, Err: err}
	}

	raw, err := decode(path, data)
	if err != nil {
		return nil, &ConfigParseError{Path: path, Err: err}
	}

	doc := make(Document, len(raw))
	for k, v := range raw {
		doc[k] = Substitute(v, os.LookupEnv)
	}
	return doc, nil
}

func decode(path string, data []byte) (map[string]any, error) {
	var raw map[string]any
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Write marshals v to YAML with two-space indentation.
func Write(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(v)
}
