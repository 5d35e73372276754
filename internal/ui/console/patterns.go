package console

import (
	"io"
	"strconv"

	"github.com/lemmeknow/lemmeknow-cli/internal/config"
)

var (
	patternHeaders = []string{"Name", "Rarity", "Tags"}
	detailHeaders  = []string{"Field", "Value"}
)

// ListPatterns prints the pattern database as a table.
func (p *Printer) ListPatterns(patterns []config.Pattern) error {
	if len(patterns) == 0 {
		return p.status("No patterns selected", RoleNegative)
	}
	if err := p.WriteTable(patternTable(patterns)); err != nil {
		return err
	}
	_, err := io.WriteString(p.out, p.styler.Emphasize(patternCount(len(patterns)), RolePositive)+"\n")
	return err
}

func patternTable(patterns []config.Pattern) Table {
	t := Table{Headers: append([]string(nil), patternHeaders...)}
	for _, pat := range patterns {
		t.Rows = append(t.Rows, []string{pat.Name, pat.RarityString(), joinTags(pat.Tags)})
	}
	return t
}

func patternCount(n int) string {
	if n == 1 {
		return "1 pattern"
	}
	return strconv.Itoa(n) + " patterns"
}

// ShowPattern prints every field of one pattern.
func (p *Printer) ShowPattern(pat config.Pattern) error {
	return p.WriteTable(patternDetail(pat))
}

func patternDetail(pat config.Pattern) Table {
	plural := "no"
	if pat.PluralName {
		plural = "yes"
	}
	return Table{
		Headers: append([]string(nil), detailHeaders...),
		Rows: [][]string{
			{"Name", pat.Name},
			{"Regex", pat.Regex},
			{"Plural name", plural},
			{"Rarity", pat.RarityString()},
			{"Tags", joinTags(pat.Tags)},
			{"Description", orNone(pat.Description)},
			{"URL", orNone(pat.URL)},
			{"Exploit", orNone(pat.Exploit)},
		},
	}
}

func orNone(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}
