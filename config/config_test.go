package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/pdfoutline/outline"
	"github.com/tsawler/pdfoutline/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pdfoutline.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.Source != "pdfs" || cfg.Destination != "output" {
		t.Errorf("directories = %q, %q", cfg.Source, cfg.Destination)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != render.FormatJSON {
		t.Errorf("Formats = %v", cfg.Formats)
	}
	if !strings.HasSuffix(cfg.Database, filepath.Join(AppName, "runs.db")) {
		t.Errorf("Database = %q", cfg.Database)
	}
	if cfg.Heuristics.VerticalMargin != outline.DefaultVerticalMargin {
		t.Errorf("Heuristics = %+v", cfg.Heuristics)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
source: in
destination: out
workers: 3
formats: [json, markdown]
database: ledger.db
heuristics:
  vertical_margin: 72
  max_heading_words: 12
  form_marker: ""
`)

	file, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if file.Source != "in" || file.Destination != "out" || file.Workers != 3 || file.Database != "ledger.db" {
		t.Errorf("file = %+v", file)
	}

	h := file.Heuristics
	if h.VerticalMargin != 72 || h.MaxHeadingWords != 12 || h.FormMarker != "" {
		t.Errorf("overridden heuristics = %+v", h)
	}
	// Keys absent from the file keep their defaults
	if h.MinHeadingWords != outline.DefaultMinHeadingWords || h.InviteMarker != outline.DefaultInviteMarker || !h.NormalizeUnicode {
		t.Errorf("default heuristics lost: %+v", h)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}

	path := writeConfig(t, "workers: [not, a, number]\n")
	if _, err := LoadConfigFile(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	file := &File{Destination: "results", Formats: []string{"html"}, Heuristics: outline.DefaultConfig()}
	file.Heuristics.MinHeadingWords = 1

	if err := cfg.Apply(file); err != nil {
		t.Fatal(err)
	}
	if cfg.Source != DefaultSource || cfg.Destination != "results" {
		t.Errorf("directories = %q, %q", cfg.Source, cfg.Destination)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != render.FormatHTML {
		t.Errorf("Formats = %v", cfg.Formats)
	}
	if cfg.Heuristics.MinHeadingWords != 1 {
		t.Errorf("Heuristics = %+v", cfg.Heuristics)
	}

	bad := &File{Formats: []string{"docx"}, Heuristics: outline.DefaultConfig()}
	if err := NewConfig().Apply(bad); !errors.Is(err, render.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero workers", func(c *Config) { c.Workers = 0 }, ErrInvalidWorkers},
		{"no formats", func(c *Config) { c.Formats = nil }, ErrNoFormats},
		{"same directory", func(c *Config) { c.Destination = "./pdfs/" }, ErrSameDirectory},
		{"bad heuristics", func(c *Config) { c.Heuristics.VerticalMargin = -5 }, outline.ErrInvalidMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "workers: 2\n")
	cfg, used, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if used != path || cfg.Workers != 2 {
		t.Errorf("Load = %+v from %q", cfg, used)
	}

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestFindConfigFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("workers: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	got := FindConfigFile("")
	if filepath.Base(got) != DefaultConfigFile {
		t.Errorf("FindConfigFile() = %q", got)
	}
}

func TestXDGDirs(t *testing.T) {
	t.Parallel()

	if filepath.Base(XDGDataDir()) != AppName || filepath.Base(XDGConfigDir()) != AppName {
		t.Errorf("XDG dirs = %q, %q", XDGDataDir(), XDGConfigDir())
	}
}
