// Copyright 2026 The Promptgate Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// placeholderRe matches ${IDENTIFIER} where IDENTIFIER is one or more word
// characters.
var placeholderRe = regexp.MustCompile(`\$\{(\w+)\}`)

// LookupFunc resolves an environment variable name. It has the signature of
// os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// Expand replaces every ${NAME} in s with the value lookup returns for NAME.
// Placeholders whose variable is unset are left as-is.
//
// All placeholder spans are located before any replacement, so a value that
// itself contains ${OTHER} is copied verbatim and never expanded again.
func Expand(s string, lookup LookupFunc) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	spans := placeholderRe.FindAllStringSubmatchIndex(s, -1)
	if len(spans) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, sp := range spans {
		// sp[0]:sp[1] is the whole placeholder, sp[2]:sp[3] the name.
		b.WriteString(s[last:sp[0]])
		if val, ok := lookup(s[sp[2]:sp[3]]); ok {
			b.WriteString(val)
		} else {
			b.WriteString(s[sp[0]:sp[1]])
		}
		last = sp[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// Substitute walks v and expands placeholders in every string it finds.
// Mappings and sequences are rebuilt; other scalars are returned unchanged.
// Mappings with non-string keys come back as map[string]any with keys
// formatted by fmt.Sprint.
func Substitute(v any, lookup LookupFunc) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = Substitute(child, lookup)
		}
		return out
	case Document:
		out := make(Document, len(val))
		for k, child := range val {
			out[k] = Substitute(child, lookup)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[fmt.Sprint(k)] = Substitute(child, lookup)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = Substitute(child, lookup)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = Substitute(child, lookup)
		}
		return out
	case string:
		return Expand(val, lookup)
	default:
		return v
	}
}
