package render

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/tsawler/pdfoutline/model"
)

// Markdown writes the title as a level one heading followed by the outline
// as a bullet list nested by heading level.
func Markdown(w io.Writer, result *model.Result) error {
	result = normalize(result)
	md := markdown.NewMarkdown(w)

	if result.Title != "" {
		md.H1(result.Title)
		md.PlainText("")
	}

	if len(result.Outline) == 0 {
		md.PlainText("No headings found.")
		return md.Build()
	}

	for i, depth := range listDepths(result.Outline) {
		entry := result.Outline[i]
		md.PlainTextf("%s- %s (p. %d)", strings.Repeat("  ", depth), entry.Text, entry.Page)
	}

	return md.Build()
}

// listDepths returns the nesting depth of every entry: the number of
// earlier, still open entries with a smaller level. A skipped level nests
// only one step, so deep entries never indent far enough to turn into a
// code block.
func listDepths(entries []model.OutlineEntry) []int {
	depths := make([]int, len(entries))
	var open []model.Level
	for i, e := range entries {
		for len(open) > 0 && open[len(open)-1] >= e.Level {
			open = open[:len(open)-1]
		}
		depths[i] = len(open)
		open = append(open, e.Level)
	}
	return depths
}
