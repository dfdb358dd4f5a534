package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() Document {
	return Document{
		"BASIC_MODEL": map[string]any{
			"model":   "gpt-4o",
			"api_key": "sk-test",
		},
		"timeout": 30,
	}
}

func TestLookup_TopLevel(t *testing.T) {
	val, err := Lookup(sampleDoc(), "timeout")
	require.NoError(t, err)
	assert.Equal(t, 30, val)
}

func TestLookup_Nested(t *testing.T) {
	val, err := Lookup(sampleDoc(), "BASIC_MODEL.model")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", val)
}

func TestLookup_Block(t *testing.T) {
	val, err := Lookup(sampleDoc(), "BASIC_MODEL")
	require.NoError(t, err)
	m, ok := val.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sk-test", m["api_key"])
}

func TestLookup_NotFound(t *testing.T) {
	_, err := Lookup(sampleDoc(), "CLAUDE_MODEL.model")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLookup_ThroughScalar(t *testing.T) {
	_, err := Lookup(sampleDoc(), "timeout.seconds")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a map")
}

func TestLookup_Empty(t *testing.T) {
	_, err := Lookup(sampleDoc(), "  ")
	assert.Error(t, err)
}

func TestLookup_NonStringKeys(t *testing.T) {
	doc := Document{"ports": map[any]any{8080: "http"}}
	val, err := Lookup(doc, "ports.8080")
	require.NoError(t, err)
	assert.Equal(t, "http", val)
}

func TestFlattenMap(t *testing.T) {
	flat := FlattenMap(sampleDoc(), "")
	assert.Equal(t, map[string]any{
		"BASIC_MODEL.model":   "gpt-4o",
		"BASIC_MODEL.api_key": "sk-test",
		"timeout":             30,
	}, flat)
}

func TestFlattenMap_Prefix(t *testing.T) {
	flat := FlattenMap(map[string]any{"a": map[string]any{"b": 1}}, "root")
	assert.Equal(t, map[string]any{"root.a.b": 1}, flat)
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]int{"b": 1, "c": 2, "a": 3})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
