package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"err":     zerolog.ErrorLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetup_WritesConsoleAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	var stderr bytes.Buffer
	Setup(zerolog.DebugLevel, &stderr, dir)
	t.Cleanup(Close)

	Debug().Str("pattern", "Email Address").Msg("compiled")
	Trace().Msg("hidden")

	assert.Contains(t, stderr.String(), "compiled")
	assert.NotContains(t, stderr.String(), "hidden")

	b, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"pattern":"Email Address"`)
	assert.Contains(t, string(b), `"message":"compiled"`)
}

func TestSetup_ConsoleOnly(t *testing.T) {
	var stderr bytes.Buffer
	Setup(zerolog.WarnLevel, &stderr, "")
	t.Cleanup(Close)

	Info().Msg("quiet")
	Warn().Msg("loud")
	assert.NotContains(t, stderr.String(), "quiet")
	assert.Contains(t, stderr.String(), "loud")
}
