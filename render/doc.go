// Package render writes an inferred outline in the supported output formats.
//
// JSON is the canonical format:
//
//	{
//	    "title": "Understanding AI",
//	    "outline": [
//	        {
//	            "level": "H1",
//	            "text": "Introduction",
//	            "page": 1
//	        }
//	    ]
//	}
//
// Markdown renders the outline as a nested bullet list under the title, and
// HTML as a <nav> element of nested ordered lists linking to each page.
//
// Use [FormatFor] to look up a format by name, for instance from a command
// line flag.
package render
