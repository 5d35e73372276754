package console

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/lemmeknow/lemmeknow-cli/internal/identify"
)

var markdownCell = strings.NewReplacer("|", `\|`, "\n", "<br>")

// WriteMarkdown writes results as a GitHub-flavored Markdown report: a heading
// with the status and, when there are results, the table for mode.
func WriteMarkdown(w io.Writer, results []identify.Match, mode Mode) error {
	md := markdown.NewMarkdown(w)
	if len(results) == 0 {
		md.H2(notFoundStatus).PlainText("")
		return md.Build()
	}
	t := BuildTable(results, mode)
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = make([]string, len(r))
		for j, c := range r {
			rows[i][j] = markdownCell.Replace(c)
		}
	}
	md.H2(foundStatus).PlainText("")
	md.Table(markdown.TableSet{Header: t.Headers, Rows: rows})
	return md.Build()
}
