// Package model provides the data structures shared by the parser, the
// outline inference pipeline, and the renderers.
//
// # Input
//
// A [Document] is an ordered list of [Page] values. Each page carries its
// dimensions and an ordered list of [Block] values; a block holds [Line]
// values, and a line holds [Span] values, the smallest styled runs of text:
//
//	doc := model.NewDocument(model.Page{
//	    Width: 612, Height: 792,
//	    Blocks: []model.Block{{
//	        BBox:  model.NewBBox(72, 100, 300, 20),
//	        Lines: []model.Line{{Spans: []model.Span{{Text: "1. Introduction", Size: 16, Bold: true}}}},
//	    }},
//	})
//
// Geometry uses page space with the origin in the top-left corner; see [BBox].
//
// # Output
//
// Inference produces a [Result]: a title and an ordered list of
// [OutlineEntry] values, each with a [Level], the heading text and its
// 1-based page number. A [StyleProfile] records the font statistics that
// drove the classification.
package model
