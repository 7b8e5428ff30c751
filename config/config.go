package config

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"

	"github.com/tsawler/pdfoutline/outline"
	"github.com/tsawler/pdfoutline/render"
)

// AppName is the directory name used under the XDG base directories
const AppName = "pdfoutline"

// Default directories of a batch run
const (
	DefaultSource      = "pdfs"
	DefaultDestination = "output"
)

// Config is the resolved configuration of a batch run
type Config struct {
	// Source is the directory scanned for PDF files
	Source string

	// Destination is the directory the outputs are written to
	Destination string

	// Workers is the number of files processed concurrently
	Workers int

	// Formats are the output formats; JSON is always written
	Formats []render.Format

	// Database is the run ledger path; empty disables the ledger
	Database string

	// Heuristics configure outline inference
	Heuristics outline.Config

	// Verbose enables debug logging
	Verbose bool
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		Source:      DefaultSource,
		Destination: DefaultDestination,
		Workers:     runtime.NumCPU(),
		Formats:     []render.Format{render.FormatJSON},
		Database:    DefaultDatabasePath(),
		Heuristics:  outline.DefaultConfig(),
	}
}

// Apply overlays the values set in a configuration file
func (c *Config) Apply(f *File) error {
	if f == nil {
		return nil
	}
	if f.Source != "" {
		c.Source = f.Source
	}
	if f.Destination != "" {
		c.Destination = f.Destination
	}
	if f.Workers != 0 {
		c.Workers = f.Workers
	}
	if f.Database != "" {
		c.Database = f.Database
	}
	if len(f.Formats) > 0 {
		formats, err := render.ParseFormats(f.Formats)
		if err != nil {
			return err
		}
		c.Formats = formats
	}
	c.Heuristics = f.Heuristics
	return nil
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	if len(c.Formats) == 0 {
		return ErrNoFormats
	}
	if filepath.Clean(c.Source) == filepath.Clean(c.Destination) {
		return ErrSameDirectory
	}
	if err := c.Heuristics.Validate(); err != nil {
		return fmt.Errorf("heuristics: %w", err)
	}
	return nil
}

// XDGDataDir returns the XDG data directory for pdfoutline.
// On Linux: ~/.local/share/pdfoutline
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for pdfoutline.
// On Linux: ~/.config/pdfoutline
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultDatabasePath returns the default location of the run ledger
func DefaultDatabasePath() string {
	return filepath.Join(XDGDataDir(), "runs.db")
}
