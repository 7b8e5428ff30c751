// Package pdfoutline provides a fluent API for inferring the title and the
// heading outline of PDF files.
//
// Basic usage:
//
//	result, warnings, err := pdfoutline.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfoutline.FormatWarnings(warnings))
//	}
//	for _, entry := range result.Outline {
//	    fmt.Println(entry.Level, entry.Text, entry.Page)
//	}
//
// With options:
//
//	result, _, err := pdfoutline.Open("report.pdf").
//	    VerticalMargin(72).
//	    WordBounds(1, 12).
//	    Outline()
//
// For advanced use cases, the lower-level reader and outline packages are
// also available.
package pdfoutline

import (
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/reader"
)

// Open returns an Extractor for the PDF file at filename. The file is opened
// on the first terminal operation and closed when it returns.
//
// Example:
//
//	result, warnings, err := pdfoutline.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	result, warnings, err := pdfoutline.FromReader(r).Outline()
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// FromDocument creates an Extractor for a document that was already parsed,
// or built by hand.
//
// Example:
//
//	result, _, err := pdfoutline.FromDocument(doc).Outline()
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	title := pdfoutline.Must(pdfoutline.Open("document.pdf").Title())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline is a helper that wraps a call to Outline() and panics if the
// error is non-nil. It discards warnings and returns just the result.
//
// Example:
//
//	result := pdfoutline.MustOutline(pdfoutline.Open("document.pdf").Outline())
func MustOutline(result *model.Result, _ []Warning, err error) *model.Result {
	if err != nil {
		panic(err)
	}
	return result
}
