package outline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// bullets are glyphs that PDF generators leave in front of list items and
// headings; one of them is dropped from the start of cleaned text.
const bullets = "•●■–-"

// Clean collapses whitespace runs into single spaces, trims the result and
// removes one leading bullet glyph.
func Clean(text string) string {
	text = strings.Join(strings.Fields(text), " ")

	r, size := utf8.DecodeRuneInString(text)
	if size > 0 && strings.ContainsRune(bullets, r) {
		text = strings.TrimLeftFunc(text[size:], unicode.IsSpace)
	}
	return text
}

// Normalize applies Unicode NFKC so that ligatures and compatibility forms
// emitted by PDF fonts (ﬁ, ﬀ, full-width digits) compare as plain text.
func Normalize(text string) string {
	return norm.NFKC.String(text)
}

// isUpper reports whether text has at least one cased letter and no
// lowercase or titlecase letters.
func isUpper(text string) bool {
	cased := false
	for _, r := range text {
		switch {
		case unicode.IsLower(r) || unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
