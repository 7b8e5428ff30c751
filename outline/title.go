package outline

import (
	"math"
	"strings"

	"github.com/tsawler/pdfoutline/model"
)

// TitleCandidate is a first-page block whose font size is a heading size
type TitleCandidate struct {
	Text string     // cleaned text of the block's first line
	Size float64    // rounded size of the block's first span
	BBox model.BBox // block bounds
}

// TitleScorer ranks a title candidate; the lowest score wins
type TitleScorer func(c TitleCandidate, pageWidth float64) float64

// CenteredSizeScore weights font size a hundredfold against the horizontal
// distance between the block center and the page center, so larger text
// always wins and centering only separates blocks of the same size.
func CenteredSizeScore(c TitleCandidate, pageWidth float64) float64 {
	centerOffset := math.Abs(c.BBox.Center().X - pageWidth/2)
	return -(c.Size * 100) + centerOffset
}

// TitleCandidates collects the blocks of a page eligible as a title, in block order
func TitleCandidates(page *model.Page, profile model.StyleProfile, cfg Config) []TitleCandidate {
	if page == nil {
		return nil
	}

	var candidates []TitleCandidate
	for _, block := range page.Blocks {
		span, ok := block.FirstSpan()
		if !ok {
			continue
		}
		size := RoundSize(span.Size)
		text := cfg.clean(block.FirstLineText())
		if text == "" {
			continue
		}
		if _, isHeading := profile.LevelFor(size); !isHeading {
			continue
		}
		candidates = append(candidates, TitleCandidate{Text: text, Size: size, BBox: block.BBox})
	}
	return candidates
}

// DetectTitle picks the best scoring candidate on the given (first) page.
// Equal scores go to the lexicographically smaller text. Without candidates
// the first line of the page's raw text is used.
func DetectTitle(page *model.Page, profile model.StyleProfile, cfg Config) string {
	if page == nil {
		return ""
	}

	score := cfg.scorer()
	best := -1
	bestScore := 0.0
	candidates := TitleCandidates(page, profile, cfg)
	for i, c := range candidates {
		s := score(c, page.Width)
		if best < 0 || s < bestScore || (s == bestScore && strings.Compare(c.Text, candidates[best].Text) < 0) {
			best, bestScore = i, s
		}
	}
	if best >= 0 {
		return candidates[best].Text
	}

	return cfg.clean(page.FirstRawLine())
}
