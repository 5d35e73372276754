package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoPatternFiles is returned by ListPatternFiles when dir holds no pattern files.
var ErrNoPatternFiles = errors.New("no pattern files found")

var current Config

func Get() Config { return current }

// ListPatternFiles returns the *.yaml, *.yml and *.toml files directly inside dir.
// A missing dir yields ErrNoPatternFiles.
func ListPatternFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoPatternFiles)
	}
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isPatternFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoPatternFiles)
	}
	return sortedPatternFiles(files), nil
}

// LoadFromFiles merges the pattern files in sorted order without the defaults.
// A pattern name may appear only once. The loaded database returned by Get is left untouched.
func LoadFromFiles(files []string) (Config, error) {
	combined := Config{}
	seen := map[string]string{}
	for _, f := range sortedPatternFiles(files) {
		part, err := decodeFile(f)
		if err != nil {
			return Config{}, err
		}
		if err := checkDuplicatesWithFiles(seen, part, f); err != nil {
			return Config{}, err
		}
		combined.Patterns = append(combined.Patterns, part.Patterns...)
	}
	return combined, nil
}

// LoadDefaultsAndFiles decodes the embedded defaults and overlays files on top.
// A file pattern named like a default one overrides the fields it sets; names
// repeated across files are an error mentioning both files.
func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Config, error) {
	var base Config
	if len(defaultsYAML) > 0 {
		if err := yaml.Unmarshal(defaultsYAML, &base); err != nil {
			return Config{}, fmt.Errorf("defaults: %w", err)
		}
	}
	if err := ValidateNoDuplicates(base); err != nil {
		return Config{}, fmt.Errorf("defaults: %w", err)
	}
	merged := base
	seen := map[string]string{}
	for _, f := range sortedPatternFiles(files) {
		part, err := decodeFile(f)
		if err != nil {
			return Config{}, err
		}
		if err := checkDuplicatesWithFiles(seen, part, f); err != nil {
			return Config{}, err
		}
		merged = mergeConfig(merged, part)
	}
	current = merged
	return merged, nil
}

func ValidateNoDuplicates(cfg Config) error {
	p := map[string]struct{}{}
	for _, v := range cfg.Patterns {
		if _, ok := p[v.Name]; ok {
			return fmt.Errorf("duplicate pattern name: %s", v.Name)
		}
		p[v.Name] = struct{}{}
	}
	return nil
}

func decodeFile(f string) (Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return Config{}, err
	}
	var part Config
	if strings.HasSuffix(strings.ToLower(f), ".toml") {
		err = toml.Unmarshal(b, &part)
	} else {
		err = yaml.Unmarshal(b, &part)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", f, err)
	}
	return part, nil
}

func isPatternFile(name string) bool {
	low := strings.ToLower(name)
	return strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") || strings.HasSuffix(low, ".toml")
}

func sortedPatternFiles(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if isPatternFile(f) {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

// mergeConfig keeps base order; new overlay patterns are appended in overlay order.
func mergeConfig(base, overlay Config) Config {
	idx := make(map[string]int, len(base.Patterns))
	patterns := make([]Pattern, 0, len(base.Patterns)+len(overlay.Patterns))
	for i, p := range base.Patterns {
		idx[p.Name] = i
		patterns = append(patterns, p)
	}
	for _, p := range overlay.Patterns {
		if i, ok := idx[p.Name]; ok {
			patterns[i] = mergePattern(patterns[i], p)
			continue
		}
		idx[p.Name] = len(patterns)
		patterns = append(patterns, p)
	}
	return Config{Patterns: patterns}
}

// mergePattern applies the fields b sets. A zero rarity leaves a's rarity untouched.
func mergePattern(a, b Pattern) Pattern {
	out := a
	if b.Regex != "" {
		out.Regex = b.Regex
	}
	if b.PluralName {
		out.PluralName = true
	}
	if b.Description != nil {
		out.Description = b.Description
	}
	if b.Rarity != 0 {
		out.Rarity = b.Rarity
	}
	if b.URL != nil {
		out.URL = b.URL
	}
	if len(b.Tags) > 0 {
		out.Tags = b.Tags
	}
	if b.Exploit != nil {
		out.Exploit = b.Exploit
	}
	return out
}

func checkDuplicatesWithFiles(seen map[string]string, part Config, file string) error {
	local := map[string]struct{}{}
	for _, p := range part.Patterns {
		if _, ok := local[p.Name]; ok {
			return fmt.Errorf("duplicate pattern '%s' found in %s", p.Name, file)
		}
		local[p.Name] = struct{}{}
	}
	for _, p := range part.Patterns {
		if prev, ok := seen[p.Name]; ok {
			return fmt.Errorf("duplicate pattern '%s' found in %s and %s", p.Name, prev, file)
		}
	}
	for _, p := range part.Patterns {
		seen[p.Name] = file
	}
	return nil
}
