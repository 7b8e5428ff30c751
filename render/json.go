package render

import (
	"encoding/json"
	"io"

	"github.com/tsawler/pdfoutline/model"
)

// JSON writes the result as JSON indented by four spaces. Non-ASCII text and
// HTML characters are written as is.
func JSON(w io.Writer, result *model.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(normalize(result))
}

// normalize guarantees a non-nil result with a non-nil outline
func normalize(result *model.Result) *model.Result {
	if result == nil {
		return model.NewResult("", nil)
	}
	if result.Outline == nil {
		return model.NewResult(result.Title, nil)
	}
	return result
}
