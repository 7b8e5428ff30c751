// Package reader opens PDF files and turns their text layer into a
// [model.Document] of styled blocks.
//
// # Opening PDF Files
//
// Use [Open] to open a PDF file for reading:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	doc, err := r.Document()
//
// Opening validates the file structure first; files that are not PDFs or
// are too damaged to read fail with an error wrapping [ErrOpen].
//
// # Layout Assembly
//
// Every page is decoded into positioned glyphs, which the [Assembler] merges
// bottom-up:
//
//   - Glyphs sharing a baseline become a line; glyphs of the same font and
//     size within a line become a span
//   - A space is inserted where the gap between glyphs exceeds a fraction of
//     the font size
//   - Consecutive lines that overlap horizontally and are separated by less
//     than a multiple of the line height form a block
//
// Coordinates are converted from PDF user space (origin bottom-left) to page
// space (origin top-left), so block tops grow down the page.
//
// # Damaged Pages
//
// A page whose content cannot be decoded is returned without blocks and is
// listed by [Reader.Warnings]; the rest of the document is still read.
package reader
