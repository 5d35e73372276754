package console

import (
	"strings"

	"github.com/lemmeknow/lemmeknow-cli/internal/identify"
)

// Table is the plain data handed to the table renderer: one row per match,
// in input order.
type Table struct {
	Headers []string
	Rows    [][]string
}

// BuildTable lays out results for mode. The row shape is chosen once up front.
func BuildTable(results []identify.Match, mode Mode) Table {
	row := normalRow
	if mode == Verbose {
		row = verboseRow
	}
	t := Table{Headers: mode.Headers(), Rows: make([][]string, 0, len(results))}
	for _, m := range results {
		t.Rows = append(t.Rows, row(m))
	}
	return t
}

func normalRow(m identify.Match) []string {
	return []string{m.Text, m.Data.Name, Describe(m.Data.Description, m.Data.URL, m.Text)}
}

func verboseRow(m identify.Match) []string {
	return append(normalRow(m), m.Data.RarityString(), joinTags(m.Data.Tags))
}

func joinTags(tags []string) string { return strings.Join(tags, ", ") }
