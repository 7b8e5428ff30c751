package outline

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/pdfoutline/model"
)

// Rejection names the heading filter rule that excluded a block
type Rejection int

const (
	// Accepted means no rule rejected the block
	Accepted Rejection = iota
	RejectEmpty
	RejectMargin
	RejectWordCount
	RejectUppercase
)

// String returns a short name for the rule
func (r Rejection) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectEmpty:
		return "empty"
	case RejectMargin:
		return "margin"
	case RejectWordCount:
		return "word-count"
	case RejectUppercase:
		return "uppercase"
	default:
		return "unknown"
	}
}

// RejectReason evaluates the heading filter rules in order and returns the
// first one that fails, or Accepted. text must already be cleaned.
func RejectReason(text string, bbox model.BBox, pageHeight float64, cfg Config) Rejection {
	if strings.TrimSpace(text) == "" {
		return RejectEmpty
	}

	// Running headers and footers
	if bbox.Top() < cfg.VerticalMargin || bbox.Bottom() > pageHeight-cfg.VerticalMargin {
		return RejectMargin
	}

	words := len(strings.Fields(text))
	if words < cfg.MinHeadingWords || words > cfg.MaxHeadingWords {
		return RejectWordCount
	}

	if isUpper(text) && utf8.RuneCountInString(text) > cfg.MaxUppercaseRunes {
		return RejectUppercase
	}

	return Accepted
}

// IsHeadingCandidate reports whether a block with the given cleaned text and
// bounds may be a heading.
func IsHeadingCandidate(text string, bbox model.BBox, pageHeight float64, cfg Config) bool {
	return RejectReason(text, bbox, pageHeight, cfg) == Accepted
}
