package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

// DefaultPatternsFile is the name the embedded database is written under.
const DefaultPatternsFile = "patterns.yaml"

//go:embed default-patterns.yaml
var DefaultPatterns []byte

//go:embed patterns.schema.json
var PatternsSchema []byte

// WriteDefaultPatternsIfMissing writes patterns.yaml to targetDir if it does not exist.
// It reports whether the file was written.
func WriteDefaultPatternsIfMissing(targetDir string) (bool, error) {
	if targetDir == "" {
		return false, errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return false, err
	}
	p := filepath.Join(targetDir, DefaultPatternsFile)
	if _, err := os.Stat(p); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.WriteFile(p, DefaultPatterns, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
