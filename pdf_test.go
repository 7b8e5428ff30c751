package pdfoutline

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tsawler/pdfoutline/internal/pdftest"
	"github.com/tsawler/pdfoutline/model"
)

func fieldReportPath(t *testing.T) string {
	t.Helper()
	return pdftest.WriteFile(t, filepath.Join(t.TempDir(), "field-report.pdf"), pdftest.FieldReport()...)
}

func TestOutlineFromPDF(t *testing.T) {
	result, warnings, err := Open(fieldReportPath(t)).Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %s", FormatWarnings(warnings))
	}

	want := &model.Result{
		Title: "Annual Field Report",
		Outline: []model.OutlineEntry{
			{Level: 1, Text: "Annual Field Report", Page: 1},
			{Level: 2, Text: "Results and Discussion", Page: 1},
			{Level: 2, Text: "Methods Used", Page: 1},
			{Level: 2, Text: "Regional Summary", Page: 2},
		},
	}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("Outline() = %+v\nwant %+v", result, want)
	}
}

func TestVerticalMarginOnPDF(t *testing.T) {
	// The bold running header of page 2 sits 19.2 points below the top edge
	result, _, err := Open(fieldReportPath(t)).VerticalMargin(10).Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}

	var texts []string
	for _, e := range result.Outline {
		texts = append(texts, e.Text)
	}
	want := []string{"Annual Field Report", "Results and Discussion", "Methods Used", "Field Report Continued", "Regional Summary"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("headings = %q, want %q", texts, want)
	}
}

func TestExtractorReuse(t *testing.T) {
	ext := Open(fieldReportPath(t))
	defer ext.Close()

	first, _, err := ext.Outline()
	if err != nil {
		t.Fatalf("first Outline: %v", err)
	}
	second, _, err := ext.Outline()
	if err != nil {
		t.Fatalf("second Outline: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Outline differs:\n%+v\n%+v", first, second)
	}

	count, err := ext.PageCount()
	if err != nil || count != 2 {
		t.Fatalf("PageCount after Outline = %d, %v", count, err)
	}
	title, err := ext.Title()
	if err != nil || title != "Annual Field Report" {
		t.Errorf("Title after PageCount = %q, %v", title, err)
	}
	if _, err := ext.Styles(); err != nil {
		t.Errorf("Styles after Title: %v", err)
	}
}
