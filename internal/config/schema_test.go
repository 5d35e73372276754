package config

import (
	"testing"

	"github.com/lemmeknow/lemmeknow-cli/internal/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateAgainstSchema_Valid(t *testing.T) {
	cfg := Config{
		Patterns: []Pattern{{
			Name:        "YouTube Channel ID",
			Regex:       "^UC[0-9A-Za-z_-]{21}[AQgw]$",
			Description: strPtr("A channel on YouTube"),
			Rarity:      1,
			URL:         strPtr("https://www.youtube.com/channel/"),
			Tags:        []string{"Media", "YouTube"},
		}, {
			Name:   "Date",
			Regex:  "^[0-9]{4}$",
			Rarity: 0.1,
		}},
	}
	assert.NoError(t, ValidateAgainstSchema(cfg))
}

func TestValidateAgainstSchema_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
	}{
		{"missing regex", Pattern{Name: "x", Rarity: 0.5}},
		{"missing name", Pattern{Regex: "x", Rarity: 0.5}},
		{"rarity above one", Pattern{Name: "x", Regex: "x", Rarity: 1.5}},
		{"negative rarity", Pattern{Name: "x", Regex: "x", Rarity: -0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAgainstSchema(Config{Patterns: []Pattern{tt.pattern}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestValidateAgainstSchema_EmbeddedDefaults(t *testing.T) {
	cfg, err := LoadDefaultsAndFiles(assets.DefaultPatterns, nil)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Patterns)
	assert.NoError(t, ValidateAgainstSchema(cfg))
}
