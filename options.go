package pdfoutline

import (
	"log/slog"

	"github.com/tsawler/pdfoutline/outline"
)

// ExtractOptions holds configuration for outline inference.
type ExtractOptions struct {
	// Heuristics passed to the outline pipeline
	config outline.Config

	// Logger for diagnostics; the pipeline itself never logs
	logger *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		config: outline.DefaultConfig(),
		logger: slog.Default(),
	}
}

// clone creates a copy of ExtractOptions. Config holds no reference types
// other than the scorer function, which is immutable.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		config: o.config,
		logger: o.logger,
	}
}
