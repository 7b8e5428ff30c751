package outline

import "github.com/tsawler/pdfoutline/model"

const (
	letterWidth  = 612.0
	letterHeight = 792.0
)

// makeSpan creates a regular-weight span
func makeSpan(text string, size float64) model.Span {
	return model.Span{Text: text, Size: size}
}

// makeBoldSpan creates a bold span
func makeBoldSpan(text string, size float64) model.Span {
	return model.Span{Text: text, Size: size, Bold: true}
}

// makeBlock creates a single-line block at the given position
func makeBlock(x, y, w, h float64, spans ...model.Span) model.Block {
	bbox := model.NewBBox(x, y, w, h)
	return model.Block{
		BBox:  bbox,
		Lines: []model.Line{{BBox: bbox, Spans: spans}},
	}
}

// bodyBlock creates a paragraph block of body text well inside the margins
func bodyBlock(y float64, text string) model.Block {
	return makeBlock(72, y, 468, 40, makeSpan(text, 10), makeSpan(text, 10), makeSpan(text, 10))
}

// makePage creates a US Letter page holding the given blocks
func makePage(blocks ...model.Block) model.Page {
	return model.Page{Width: letterWidth, Height: letterHeight, Blocks: blocks}
}
