package reader

import (
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/pdfoutline/model"
)

// ErrOpen is returned when a file cannot be opened or is not a readable PDF
var ErrOpen = errors.New("cannot open PDF")

// ErrClosed is returned when a closed Reader is used
var ErrClosed = errors.New("reader is closed")

// PageWarning records a page that could not be decoded
type PageWarning struct {
	Page int
	Err  error
}

// String formats the warning for display
func (w PageWarning) String() string {
	return fmt.Sprintf("page %d: %v", w.Page, w.Err)
}

// Reader represents an open PDF file
type Reader struct {
	file      *os.File
	pdf       *pdf.Reader
	sizes     []pageSize
	assembler *Assembler
	warnings  []PageWarning
}

// Open validates and opens a PDF file. Every failure wraps ErrOpen.
func Open(filename string) (*Reader, error) {
	return OpenWithAssembler(filename, NewAssembler())
}

// OpenWithAssembler opens a PDF file that is laid out with a custom assembler
func OpenWithAssembler(filename string, assembler *Assembler) (*Reader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	r, err := newReader(file, assembler)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, filename, err)
	}
	return r, nil
}

func newReader(file *os.File, assembler *Assembler) (r *Reader, err error) {
	// The glyph layer panics on some malformed cross-reference data
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, fmt.Errorf("malformed PDF: %v", p)
		}
	}()

	sizes, err := preflight(file)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}
	glyphs, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to read text layer: %w", err)
	}

	return &Reader{
		file:      file,
		pdf:       glyphs,
		sizes:     sizes,
		assembler: assembler,
	}, nil
}

// Close releases the underlying file. It is safe to call more than once.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.pdf = nil
	return err
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() int {
	if r.pdf == nil {
		return 0
	}
	return r.pdf.NumPage()
}

// Document decodes every page into styled blocks. Pages that cannot be
// decoded are kept empty and reported by Warnings.
func (r *Reader) Document() (*model.Document, error) {
	if r.pdf == nil {
		return nil, ErrClosed
	}

	r.warnings = nil
	count := r.PageCount()
	doc := &model.Document{Pages: make([]model.Page, 0, count)}

	for i := 1; i <= count; i++ {
		page, err := r.readPage(i)
		if err != nil {
			r.warnings = append(r.warnings, PageWarning{Page: i, Err: err})
		}
		doc.AddPage(page)
	}

	return doc, nil
}

// Warnings returns the pages that failed to decode during the last call to Document
func (r *Reader) Warnings() []PageWarning {
	return r.warnings
}

func (r *Reader) readPage(number int) (page model.Page, err error) {
	size := r.pageSize(number)
	page = model.Page{Width: size.Width, Height: size.Height}

	defer func() {
		if p := recover(); p != nil {
			page.Blocks = nil
			page.RawText = ""
			err = fmt.Errorf("failed to decode content: %v", p)
		}
	}()

	p := r.pdf.Page(number)
	if p.V.IsNull() {
		return page, errors.New("missing page object")
	}

	page.Blocks = r.assembler.Assemble(p.Content().Text, size.Height)

	raw, err := p.GetPlainText(nil)
	if err != nil {
		return page, fmt.Errorf("failed to extract plain text: %w", err)
	}
	page.RawText = raw

	return page, nil
}

func (r *Reader) pageSize(number int) pageSize {
	if number < 1 || number > len(r.sizes) {
		return defaultPageSize
	}
	return r.sizes[number-1]
}
