package batch

import (
	"log/slog"
	"slices"

	"github.com/tsawler/pdfoutline/outline"
	"github.com/tsawler/pdfoutline/render"
)

// Option configures a Processor.
type Option func(*Processor)

// WithWorkers sets the maximum number of files processed at once.
// Values below one are ignored.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithLogger sets a custom logger for batch processing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithFormats sets the output formats written for every file.
// JSON is always written.
func WithFormats(formats ...render.Format) Option {
	return func(p *Processor) {
		p.formats = withJSON(formats)
	}
}

// WithConfig sets the heuristics used for every file.
func WithConfig(config outline.Config) Option {
	return func(p *Processor) {
		p.config = config
	}
}

// WithRecorder persists the run and the outcome of every file.
func WithRecorder(recorder Recorder) Option {
	return func(p *Processor) {
		p.recorder = recorder
	}
}

// WithOverwrite controls whether existing outputs are replaced. When false,
// files whose JSON output already exists are skipped.
func WithOverwrite(overwrite bool) Option {
	return func(p *Processor) {
		p.overwrite = overwrite
	}
}

// WithAnalyzer replaces the function that infers the outline of one file.
func WithAnalyzer(analyze AnalyzeFunc) Option {
	return func(p *Processor) {
		if analyze != nil {
			p.analyze = analyze
		}
	}
}

// withJSON returns the formats with duplicates removed and JSON first
func withJSON(formats []render.Format) []render.Format {
	out := []render.Format{render.FormatJSON}
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
