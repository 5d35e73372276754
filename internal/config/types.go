package config

import "strconv"

// Pattern describes one entry of the pattern database.
type Pattern struct {
	Name        string   `yaml:"name" toml:"name" json:"name"`
	Regex       string   `yaml:"regex" toml:"regex" json:"regex"`
	PluralName  bool     `yaml:"plural_name" toml:"plural_name" json:"plural_name"`
	Description *string  `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Rarity      float64  `yaml:"rarity" toml:"rarity" json:"rarity"`
	URL         *string  `yaml:"url,omitempty" toml:"url,omitempty" json:"url,omitempty"`
	Tags        []string `yaml:"tags" toml:"tags" json:"tags,omitempty"`
	Exploit     *string  `yaml:"exploit,omitempty" toml:"exploit,omitempty" json:"exploit,omitempty"`
}

// RarityString formats the rarity with the shortest exact representation ("1", "0.5").
func (p Pattern) RarityString() string {
	return strconv.FormatFloat(p.Rarity, 'f', -1, 64)
}

// HasTag reports whether p carries any of tags.
func (p Pattern) HasTag(tags ...string) bool {
	for _, want := range tags {
		for _, have := range p.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

type Config struct {
	Patterns []Pattern `yaml:"patterns" toml:"patterns" json:"patterns,omitempty"`
}
