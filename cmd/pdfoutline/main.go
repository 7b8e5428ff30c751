// Package main provides the pdfoutline command.
//
// pdfoutline infers the title and heading outline of every PDF in a
// directory and writes one JSON file (plus optional Markdown and HTML
// renderings) per input.
//
// Usage:
//
//	pdfoutline run --src pdfs --dst output
//	pdfoutline inspect report.pdf
//	pdfoutline history
//
// See --help for all available options.
package main

func main() {
	Execute()
}
