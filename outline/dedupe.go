package outline

import "github.com/tsawler/pdfoutline/model"

type entryKey struct {
	text string
	page int
}

// Dedupe drops every entry whose (text, page) pair was already seen, keeping
// the first occurrence and the original order. The input is not modified.
func Dedupe(entries []model.OutlineEntry) []model.OutlineEntry {
	seen := make(map[entryKey]struct{}, len(entries))
	unique := make([]model.OutlineEntry, 0, len(entries))

	for _, e := range entries {
		key := entryKey{text: e.Text, page: e.Page}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, e)
	}

	return unique
}
