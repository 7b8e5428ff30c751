package model

// Document is the parsed form of a PDF consumed by outline inference.
// It is produced by a parser and never modified afterwards.
type Document struct {
	Pages []Page
}

// NewDocument creates a document from the given pages, numbering them from 1
// in the order given.
func NewDocument(pages ...Page) *Document {
	doc := &Document{Pages: make([]Page, 0, len(pages))}
	for _, p := range pages {
		doc.AddPage(p)
	}
	return doc
}

// AddPage appends a page and assigns it the next 1-based page number
func (d *Document) AddPage(page Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if d == nil || number < 1 || number > len(d.Pages) {
		return nil
	}
	return &d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// SpanCount returns the number of styled text runs across the whole document
func (d *Document) SpanCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, p := range d.Pages {
		for _, b := range p.Blocks {
			for _, l := range b.Lines {
				n += len(l.Spans)
			}
		}
	}
	return n
}
