package assets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefaultPatternsIfMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lemmeknow")

	// First call creates patterns.yaml with the embedded contents
	written, err := WriteDefaultPatternsIfMissing(dir)
	require.NoError(t, err)
	assert.True(t, written)

	p := filepath.Join(dir, DefaultPatternsFile)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.Equal(t, string(DefaultPatterns), string(b))

	// An existing file must not be overwritten
	require.NoError(t, os.WriteFile(p, []byte("modified"), 0o644))
	written, err = WriteDefaultPatternsIfMissing(dir)
	require.NoError(t, err)
	assert.False(t, written)

	b, err = os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "modified", string(b))
}

func TestWriteDefaultPatternsIfMissing_EmptyDir(t *testing.T) {
	_, err := WriteDefaultPatternsIfMissing("")
	assert.Error(t, err)
}

func TestPatternsSchemaIsJSON(t *testing.T) {
	var v map[string]any
	require.NoError(t, json.Unmarshal(PatternsSchema, &v))
	assert.Equal(t, "object", v["type"])
}
