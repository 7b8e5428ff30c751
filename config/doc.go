// Package config loads the pdfoutline configuration file and resolves the
// settings of a batch run.
//
// The configuration file is YAML:
//
//	source: pdfs
//	destination: output
//	workers: 4
//	formats: [json, md]
//	database: /var/lib/pdfoutline/runs.db
//	heuristics:
//	  vertical_margin: 50
//	  min_heading_words: 2
//	  max_heading_words: 25
//	  form_marker: "application form for"
//
// Every key is optional; heuristics not listed keep their defaults. The file
// is looked up in this order:
//
//  1. The path given with --config
//  2. pdfoutline.yaml in the current directory
//  3. config.yaml in the XDG config directory ($XDG_CONFIG_HOME/pdfoutline)
//
// Command line flags override file values.
package config
