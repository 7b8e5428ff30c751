// Package outline infers a title and a heading outline from the geometry and
// typography of a parsed document.
//
// The inference runs in stages, each a pure function:
//
//   - [AnalyzeStyles] finds the body font size and ranks every larger size as
//     a heading tier (H1 = largest).
//   - [DetectTitle] scores first-page blocks set in a heading size by size and
//     horizontal centering.
//   - [RejectReason] drops blocks in the header/footer zones, blocks with too
//     few or too many words, and long all-caps text.
//   - [Classify] assigns a level from a section number ("2.3.1 Results" is H3),
//     else from the font size tier, else places bold text one tier below the
//     smallest heading size.
//   - [BuildOutline] applies the filter and classifier to every block in
//     reading order and [Dedupe] removes repeated (text, page) pairs.
//
// [Pipeline] composes the stages and applies two document-level rules: a
// title naming an application form yields an empty outline, and so does an
// invitation with at most one heading.
//
//	result := outline.NewPipeline().Run(doc)
//	fmt.Println(result.Title)
//	for _, e := range result.Outline {
//	    fmt.Printf("%s %s (p. %d)\n", e.Level, e.Text, e.Page)
//	}
//
// All heuristic constants live in [Config]:
//
//	cfg := outline.DefaultConfig()
//	cfg.VerticalMargin = 36
//	result := outline.NewPipelineWithConfig(cfg).Run(doc)
//
// Bold text of several distinct sizes below the smallest heading size all
// lands on the same fallback tier; the classifier does not separate them.
//
// Text is passed through [Normalize] (Unicode NFKC) before [Clean] by
// default, so compatibility characters are folded in titles and headings: "ﬁ" becomes "fi", "²"
// becomes "2" and "Ⅳ" becomes "IV". Set [Config].NormalizeUnicode to false
// to keep the text exactly as the PDF encodes it.
package outline
