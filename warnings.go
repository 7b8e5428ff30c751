package pdfoutline

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal issue found while reading a document. The outline
// was still produced, but may be incomplete.
type Warning struct {
	// Page is the 1-based page the warning refers to, or 0 for the whole document
	Page int

	// Message describes the issue
	Message string
}

// String formats the warning for display
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single line suitable for logging
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
