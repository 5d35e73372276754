package console

import (
	"encoding/json"
	"io"

	"github.com/lemmeknow/lemmeknow-cli/internal/identify"
)

// WriteJSON writes results as an indented JSON array; no results is "[]".
func WriteJSON(w io.Writer, results []identify.Match) error {
	if results == nil {
		results = []identify.Match{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
