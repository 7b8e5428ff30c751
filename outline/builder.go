package outline

import (
	"github.com/tsawler/pdfoutline/model"
)

// BuildOutline walks every block of every page in reading order and collects
// the blocks that pass the heading filter and receive a level. Entries keep
// the order in which they appear in the document.
func BuildOutline(doc *model.Document, profile model.StyleProfile, cfg Config) []model.OutlineEntry {
	return buildOutline(doc, profile, cfg, nil)
}

// buildOutline is BuildOutline with optional statistics collection
func buildOutline(doc *model.Document, profile model.StyleProfile, cfg Config, report *Report) []model.OutlineEntry {
	var entries []model.OutlineEntry
	if doc == nil {
		return entries
	}

	for i := range doc.Pages {
		page := &doc.Pages[i]
		pageNumber := i + 1

		for _, block := range page.Blocks {
			text := cfg.clean(block.Text())
			if report != nil {
				report.Blocks++
			}

			if reason := RejectReason(text, block.BBox, page.Height, cfg); reason != Accepted {
				if report != nil {
					report.Rejected[reason]++
				}
				continue
			}

			candidate := Candidate{Text: text}
			if span, ok := block.FirstSpan(); ok {
				candidate.Size = RoundSize(span.Size)
				candidate.Bold = span.Bold
			}

			class, ok := Classify(candidate, profile)
			if report != nil {
				report.Candidates++
				report.ByStrategy[class.Strategy]++
			}
			if !ok {
				continue
			}

			entries = append(entries, model.OutlineEntry{
				Level: class.Level,
				Text:  class.Text,
				Page:  pageNumber,
			})
		}
	}

	return entries
}
