package outline

import (
	"math"
	"sort"

	"github.com/tsawler/pdfoutline/model"
)

// RoundSize rounds a font size to the nearest point, halves to even
func RoundSize(size float64) float64 {
	return math.RoundToEven(size)
}

// AnalyzeStyles tallies the rounded font size of every span in the document.
// The most frequent size is the body size; ties go to the smaller size. Every
// larger size becomes a heading tier, H1 being the largest.
//
// A document without spans gets defaultBodySize and no heading tiers.
func AnalyzeStyles(doc *model.Document, defaultBodySize float64) model.StyleProfile {
	counts := countSizes(doc)
	if len(counts) == 0 {
		return model.StyleProfile{
			BodySize:      defaultBodySize,
			HeadingLevels: map[float64]model.Level{},
		}
	}

	sizes := make([]float64, 0, len(counts))
	for size := range counts {
		sizes = append(sizes, size)
	}
	sort.Float64s(sizes)

	bodySize := sizes[0]
	for _, size := range sizes[1:] {
		if counts[size] > counts[bodySize] {
			bodySize = size
		}
	}

	levels := make(map[float64]model.Level)
	tier := model.Level(1)
	for i := len(sizes) - 1; i >= 0 && sizes[i] > bodySize; i-- {
		levels[sizes[i]] = tier
		tier++
	}

	return model.StyleProfile{
		BodySize:      bodySize,
		HeadingLevels: levels,
	}
}

// countSizes returns the number of spans per rounded font size
func countSizes(doc *model.Document) map[float64]int {
	counts := make(map[float64]int)
	if doc == nil {
		return counts
	}
	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				for _, span := range line.Spans {
					counts[RoundSize(span.Size)]++
				}
			}
		}
	}
	return counts
}
