// Package pdftest writes small single-font-family PDF files for tests.
//
// Pages are US Letter and use the standard Helvetica and Helvetica-Bold
// fonts without width tables, the way many simple generators emit them.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// Page dimensions in points
const (
	Width  = 612.0
	Height = 792.0
)

// Text is one string placed on a page. X and Y are the baseline origin in
// PDF user space, Y measured up from the bottom edge.
type Text struct {
	S    string
	Size float64
	X, Y float64
	Bold bool
}

// Build returns the bytes of a PDF with one page per element of pages.
func Build(pages ...[]Text) []byte {
	var objects []string
	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // page tree, filled in once the page objects are numbered
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>",
	)

	kids := make([]string, 0, len(pages))
	for _, texts := range pages {
		pageNum := len(objects) + 1
		contentNum := pageNum + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))

		content := contentStream(texts)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g] "+
				"/Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>",
				Width, Height, contentNum),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

// WriteFile builds a PDF and writes it to path.
func WriteFile(tb testing.TB, path string, pages ...[]Text) string {
	tb.Helper()
	if err := os.WriteFile(path, Build(pages...), 0o600); err != nil {
		tb.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func contentStream(texts []Text) string {
	var b strings.Builder
	for _, t := range texts {
		font := "F1"
		if t.Bold {
			font = "F2"
		}
		fmt.Fprintf(&b, "BT /%s %g Tf %g %g Td (%s) Tj ET\n", font, t.Size, t.X, t.Y, escape(t.S))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// escape quotes the characters that are special inside a literal string
func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`).Replace(s)
}
