package console

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/lemmeknow/lemmeknow-cli/internal/identify"
)

const (
	foundStatus    = "Found Possible Identifications :)"
	notFoundStatus = "No Possible Identifications :("
)

// Printer writes identification results to out. Write errors are returned,
// never swallowed.
type Printer struct {
	out    io.Writer
	styler Styler
	// width is the terminal width tables must fit in; 0 means unlimited.
	width int
}

func NewPrinter(out io.Writer, styler Styler, width int) *Printer {
	if styler == nil {
		styler = PlainStyler{}
	}
	return &Printer{out: out, styler: styler, width: width}
}

// Render prints the found/not-found status line and, when there are results,
// the table for mode.
func (p *Printer) Render(results []identify.Match, mode Mode) error {
	if len(results) == 0 {
		return p.status(notFoundStatus, RoleNegative)
	}
	if err := p.status(foundStatus, RolePositive); err != nil {
		return err
	}
	return p.WriteTable(BuildTable(results, mode))
}

func (p *Printer) status(msg string, role Role) error {
	_, err := io.WriteString(p.out, p.styler.Emphasize(msg, role)+"\n")
	return err
}

// WriteTable renders t with box-drawing borders and emphasized headers.
func (p *Printer) WriteTable(t Table) error {
	_, err := io.WriteString(p.out, p.renderTable(t)+"\n")
	return err
}

func (p *Printer) renderTable(t Table) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Options.SeparateRows = true

	header := make(table.Row, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = p.styler.Emphasize(h, RoleHeading)
	}
	tw.AppendHeader(header)
	for _, r := range t.Rows {
		row := make(table.Row, len(r))
		for i, c := range r {
			row[i] = c
		}
		tw.AppendRow(row)
	}
	tw.SetColumnConfigs(p.columnConfigs(t))
	return tw.Render()
}

// columnConfigs caps the columns that do not fit in the printer width.
func (p *Printer) columnConfigs(t Table) []table.ColumnConfig {
	n := len(t.Headers)
	if p.width <= 0 || n == 0 {
		return nil
	}
	natural := naturalWidths(t)
	widths := negotiateWidths(natural, p.width-tableOverhead(n))
	var cfgs []table.ColumnConfig
	for i, w := range widths {
		if w < natural[i] {
			cfgs = append(cfgs, table.ColumnConfig{Number: i + 1, WidthMax: w, WidthMaxEnforcer: wrapLines})
		}
	}
	return cfgs
}

// wrapLines soft-wraps every line of col on its own so explicit line breaks survive.
func wrapLines(col string, maxLen int) string {
	lines := strings.Split(col, "\n")
	for i, l := range lines {
		lines[i] = text.WrapSoft(l, maxLen)
	}
	return strings.Join(lines, "\n")
}

// tableOverhead is the border and padding width of an n column StyleLight table.
func tableOverhead(n int) int { return 3*n + 1 }

func naturalWidths(t Table) []int {
	widths := make([]int, len(t.Headers))
	measure := func(i int, cell string) {
		for _, line := range strings.Split(cell, "\n") {
			if w := text.StringWidthWithoutEscSequences(line); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, h := range t.Headers {
		measure(i, h)
	}
	for _, r := range t.Rows {
		for i, c := range r {
			if i < len(widths) {
				measure(i, c)
			}
		}
	}
	return widths
}
