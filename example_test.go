package pdfoutline_test

import (
	"fmt"
	"log"
	"os"

	"github.com/tsawler/pdfoutline"
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/outline"
	"github.com/tsawler/pdfoutline/reader"
	"github.com/tsawler/pdfoutline/render"
)

// These examples verify the README code samples compile correctly.
// They are not meant to be run as actual tests since they require files.

func Example_outline() {
	result, warnings, err := pdfoutline.Open("document.pdf").Outline()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Title)
	for _, entry := range result.Outline {
		fmt.Printf("%s %s (p. %d)\n", entry.Level, entry.Text, entry.Page)
	}

	for _, w := range warnings {
		fmt.Println("Warning:", w.Message)
	}
}

func Example_withOptions() {
	cfg := outline.DefaultConfig()
	cfg.FormMarker = ""

	result, warnings, err := pdfoutline.Open("document.pdf").
		WithConfig(cfg).
		VerticalMargin(72). // Taller header and footer zones
		WordBounds(1, 12).  // Allow single-word headings
		Outline()
	_ = result
	_ = warnings
	_ = err
}

func Example_render() {
	result, _, err := pdfoutline.Open("document.pdf").Outline()
	if err != nil {
		log.Fatal(err)
	}

	if err := render.JSON(os.Stdout, result); err != nil {
		log.Fatal(err)
	}
}

func Example_fromReader() {
	r, err := reader.Open("document.pdf")
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	count := r.PageCount()
	result, _, err := pdfoutline.FromReader(r).Outline()
	_ = count
	_ = result
	_ = err
}

func ExampleFromDocument() {
	doc := model.NewDocument(model.Page{
		Width:  612,
		Height: 792,
		Blocks: []model.Block{{
			BBox:  model.NewBBox(156, 80, 300, 30),
			Lines: []model.Line{{Spans: []model.Span{{Text: "Annual Report", Size: 24}}}},
		}, {
			BBox:  model.NewBBox(72, 140, 468, 40),
			Lines: []model.Line{{Spans: []model.Span{{Text: "Revenue grew steadily this year.", Size: 11}, {Text: " Costs fell.", Size: 11}}}},
		}},
	})

	result := pdfoutline.MustOutline(pdfoutline.FromDocument(doc).Outline())
	fmt.Println(result.Title)
	for _, entry := range result.Outline {
		fmt.Println(entry.Level, entry.Text, entry.Page)
	}
	// Output:
	// Annual Report
	// H1 Annual Report 1
}
