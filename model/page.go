package model

import "strings"

// Page represents a single page of a parsed document
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Blocks []Block // Text blocks in reading order

	// RawText is the parser's plain-text rendering of the page, used when
	// no styled block can supply a title.
	RawText string
}

// FirstRawLine returns the first newline-separated line of the raw page text
func (p *Page) FirstRawLine() string {
	if p == nil {
		return ""
	}
	line, _, _ := strings.Cut(p.RawText, "\n")
	return line
}

// Block is a layout unit: a group of lines that sit together on the page.
// Heading candidacy is judged per block.
type Block struct {
	BBox  BBox
	Lines []Line
}

// Text concatenates every span of every line without separators.
func (b Block) Text() string {
	var sb strings.Builder
	for _, line := range b.Lines {
		for _, span := range line.Spans {
			sb.WriteString(span.Text)
		}
	}
	return sb.String()
}

// FirstLineText concatenates the spans of the block's first line
func (b Block) FirstLineText() string {
	if len(b.Lines) == 0 {
		return ""
	}
	return b.Lines[0].Text()
}

// FirstSpan returns the span whose style represents the whole block.
// The second result is false for blocks with no lines or an empty first line.
func (b Block) FirstSpan() (Span, bool) {
	if len(b.Lines) == 0 || len(b.Lines[0].Spans) == 0 {
		return Span{}, false
	}
	return b.Lines[0].Spans[0], true
}

// Line is one horizontal run of spans within a block
type Line struct {
	BBox  BBox
	Spans []Span
}

// Text concatenates the line's spans
func (l Line) Text() string {
	var sb strings.Builder
	for _, span := range l.Spans {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// Span is a run of text sharing one font size and weight
type Span struct {
	Text string
	Size float64 // Font size in points, unrounded
	Bold bool
	Font string // Font name as reported by the parser, informational
}
