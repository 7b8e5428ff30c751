package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/pdfoutline/model"
)

// ErrUnknownFormat is returned by FormatFor for unsupported format names
var ErrUnknownFormat = errors.New("unknown output format")

// Format identifies an output format
type Format string

// Supported formats
const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// Formats returns every supported format
func Formats() []Format {
	return []Format{FormatJSON, FormatMarkdown, FormatHTML}
}

// FormatFor parses a format name. Names are case-insensitive and
// "markdown" is accepted for md.
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// ParseFormats parses a list of format names, dropping duplicates
func ParseFormats(names []string) ([]Format, error) {
	var formats []Format
	seen := make(map[Format]bool)
	for _, name := range names {
		f, err := FormatFor(name)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// String returns the format name
func (f Format) String() string {
	return string(f)
}

// Render writes the result in the format
func (f Format) Render(w io.Writer, result *model.Result) error {
	switch f {
	case FormatJSON:
		return JSON(w, result)
	case FormatMarkdown:
		return Markdown(w, result)
	case FormatHTML:
		return HTML(w, result)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
