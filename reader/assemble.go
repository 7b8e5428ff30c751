package reader

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/pdfoutline/model"
)

// Glyph box proportions relative to the font size
const (
	ascent  = 0.8
	descent = 0.2
)

// AssembleConfig holds the layout thresholds used to build blocks
type AssembleConfig struct {
	// LineTolerance is the maximum baseline distance for glyphs on the same line
	// as a fraction of font size (default: 0.5)
	LineTolerance float64

	// SpaceThreshold is the horizontal gap that separates two words
	// as a fraction of font size (default: 0.15)
	SpaceThreshold float64

	// ColumnGapThreshold is the horizontal gap that splits a row into separate lines
	// as a fraction of font size (default: 3.0)
	ColumnGapThreshold float64

	// VerticalGapThreshold is the minimum vertical gap to start a new block
	// as a fraction of average line height (default: 1.5)
	VerticalGapThreshold float64
}

// DefaultAssembleConfig returns sensible default configuration
func DefaultAssembleConfig() AssembleConfig {
	return AssembleConfig{
		LineTolerance:        0.5,
		SpaceThreshold:       0.15,
		ColumnGapThreshold:   3.0,
		VerticalGapThreshold: 1.5,
	}
}

// Assembler groups positioned glyphs into spans, lines and blocks
type Assembler struct {
	config AssembleConfig
}

// NewAssembler creates an assembler with default configuration
func NewAssembler() *Assembler {
	return &Assembler{
		config: DefaultAssembleConfig(),
	}
}

// NewAssemblerWithConfig creates an assembler with custom configuration
func NewAssemblerWithConfig(config AssembleConfig) *Assembler {
	return &Assembler{
		config: config,
	}
}

// glyph is a decoded character in page space
type glyph struct {
	text     string
	font     string
	size     float64
	left     float64
	right    float64
	baseline float64 // distance from the top of the page
	space    bool
}

func (g glyph) bbox() model.BBox {
	return model.NewBBoxFromEdges(g.left, g.baseline-g.size*ascent, g.right, g.baseline+g.size*descent)
}

// Assemble lays out the glyphs of one page, given in PDF user space, and
// returns its blocks from top to bottom.
func (a *Assembler) Assemble(texts []pdf.Text, pageHeight float64) []model.Block {
	glyphs := toGlyphs(texts, pageHeight)
	if len(glyphs) == 0 {
		return nil
	}

	var lines []model.Line
	for _, row := range a.groupIntoRows(glyphs) {
		lines = append(lines, a.buildLines(row)...)
	}

	return a.groupLinesIntoBlocks(lines)
}

// Advance estimates for fonts that carry no width table, as fractions of the font size
const (
	glyphAdvance = 0.5
	spaceAdvance = 0.25
)

// toGlyphs flips glyphs into page space and drops the ones without text or size.
//
// Standard 14 fonts embedded without /Widths report W == 0, and the parser
// then leaves every glyph of a string at the same X. Those glyphs are laid
// out with an estimated advance, continuing from the previous glyph when
// it sits on the same baseline and the reported X barely moved.
func toGlyphs(texts []pdf.Text, pageHeight float64) []glyph {
	glyphs := make([]glyph, 0, len(texts))

	var prevX, prevY, prevRight float64
	havePrev := false

	for _, t := range texts {
		if t.S == "" || t.FontSize <= 0 {
			continue
		}

		left, right := t.X, t.X+t.W
		if t.W <= 0 {
			if havePrev && math.Abs(t.Y-prevY) < 0.01 && t.X >= prevX-0.01 && t.X-prevX < t.FontSize*spaceAdvance {
				left = prevRight + (t.X - prevX)
			}
			right = left + estimateAdvance(t.S, t.FontSize)
		}
		prevX, prevY, prevRight = t.X, t.Y, right
		havePrev = true

		glyphs = append(glyphs, glyph{
			text:     t.S,
			font:     t.Font,
			size:     t.FontSize,
			left:     left,
			right:    right,
			baseline: pageHeight - t.Y,
			space:    strings.TrimSpace(t.S) == "",
		})
	}
	return glyphs
}

// estimateAdvance approximates the width of s set at size
func estimateAdvance(s string, size float64) float64 {
	var w float64
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
		case unicode.IsSpace(r):
			w += size * spaceAdvance
		default:
			w += size * glyphAdvance
		}
	}
	return w
}

// groupIntoRows groups glyphs into horizontal rows based on their baseline
func (a *Assembler) groupIntoRows(glyphs []glyph) [][]glyph {
	sorted := make([]glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].baseline != sorted[j].baseline {
			return sorted[i].baseline < sorted[j].baseline
		}
		return sorted[i].left < sorted[j].left
	})

	var rows [][]glyph
	var current []glyph

	for _, g := range sorted {
		if len(current) == 0 {
			current = append(current, g)
			continue
		}

		// Compare against the row's first glyph so rows do not drift down the page
		first := current[0]
		tolerance := math.Max(first.size, g.size) * a.config.LineTolerance
		if g.baseline-first.baseline <= tolerance {
			current = append(current, g)
		} else {
			rows = append(rows, current)
			current = []glyph{g}
		}
	}

	if len(current) > 0 {
		rows = append(rows, current)
	}

	// Sort glyphs within each row left to right
	for i := range rows {
		row := rows[i]
		sort.SliceStable(row, func(x, y int) bool {
			return row[x].left < row[y].left
		})
	}

	return rows
}

// buildLines merges a row into spans. A wide horizontal gap ends the line
// and starts another one on the same row.
func (a *Assembler) buildLines(row []glyph) []model.Line {
	var lines []model.Line
	var line model.Line
	var prev glyph
	pendingSpace := false
	trailingSpace := false

	// A space glyph that ends a line stays on its last span, so lines of a
	// wrapped heading join with a word break.
	finish := func() {
		if n := len(line.Spans); n > 0 {
			if trailingSpace && !strings.HasSuffix(line.Spans[n-1].Text, " ") {
				line.Spans[n-1].Text += " "
			}
			lines = append(lines, line)
		}
		line = model.Line{}
		pendingSpace = false
		trailingSpace = false
	}

	for _, g := range row {
		if g.space {
			if len(line.Spans) > 0 {
				pendingSpace = true
				trailingSpace = trailingSpace || strings.Contains(g.text, " ")
			}
			continue
		}
		trailingSpace = false

		if len(line.Spans) > 0 {
			gap := g.left - prev.right
			if gap > g.size*a.config.ColumnGapThreshold {
				finish()
			} else if gap > g.size*a.config.SpaceThreshold {
				pendingSpace = true
			}
		}

		if len(line.Spans) == 0 {
			line.BBox = g.bbox()
			line.Spans = []model.Span{newSpan(g)}
		} else {
			last := &line.Spans[len(line.Spans)-1]
			if pendingSpace && !strings.HasSuffix(last.Text, " ") {
				last.Text += " "
			}
			if sameStyle(*last, g) {
				last.Text += g.text
			} else {
				line.Spans = append(line.Spans, newSpan(g))
			}
			line.BBox = line.BBox.Union(g.bbox())
		}

		pendingSpace = false
		prev = g
	}

	finish()
	return lines
}

func newSpan(g glyph) model.Span {
	return model.Span{
		Text: g.text,
		Size: g.size,
		Bold: isBold(g.font),
		Font: g.font,
	}
}

// sameStyle reports whether a glyph continues a span
func sameStyle(span model.Span, g glyph) bool {
	return span.Font == g.font && math.Abs(span.Size-g.size) < 0.01
}

// groupLinesIntoBlocks groups lines into blocks based on vertical gaps
func (a *Assembler) groupLinesIntoBlocks(lines []model.Line) []model.Block {
	if len(lines) == 0 {
		return nil
	}

	var blocks []model.Block
	current := model.Block{BBox: lines[0].BBox, Lines: []model.Line{lines[0]}}

	for i := 1; i < len(lines); i++ {
		prevLine := lines[i-1]
		currLine := lines[i]

		// Distance between bottom of prev and top of curr
		gap := currLine.BBox.Top() - prevLine.BBox.Bottom()
		avgHeight := (prevLine.BBox.Height + currLine.BBox.Height) / 2
		threshold := avgHeight * a.config.VerticalGapThreshold

		// Lines must overlap horizontally to be in the same block
		if gap > threshold || !prevLine.BBox.HorizontalOverlap(currLine.BBox) {
			blocks = append(blocks, current)
			current = model.Block{BBox: currLine.BBox, Lines: []model.Line{currLine}}
		} else {
			current.Lines = append(current.Lines, currLine)
			current.BBox = current.BBox.Union(currLine.BBox)
		}
	}

	blocks = append(blocks, current)
	return blocks
}
