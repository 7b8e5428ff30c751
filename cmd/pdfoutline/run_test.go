package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/pdfoutline/render"
)

func TestRunCreatesSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "pdfs")

	out, err := execute(t, "run", "--config", writeConfig(t), "--src", src, "--dst", filepath.Join(dir, "output"), "--no-db")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "place your PDF files there") {
		t.Errorf("output = %q, want the source-created message", out)
	}
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		t.Errorf("source directory was not created: %v", err)
	}
}

func TestRunReportsFailedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "pdfs")
	dst := filepath.Join(dir, "output")
	if err := os.Mkdir(src, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "broken.pdf"), []byte("not a pdf"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "run", "--config", writeConfig(t), "--src", src, "--dst", dst, "--no-db")
	if err != nil {
		t.Fatalf("per-file failures must not fail the command: %v", err)
	}
	if !strings.Contains(out, "1 failed") {
		t.Errorf("output = %q, want one failure", out)
	}
	if !strings.Contains(out, "failed: broken.pdf") {
		t.Errorf("output = %q, want the failed file listed", out)
	}
	if _, err := os.Stat(filepath.Join(dst, "broken.json")); !os.IsNotExist(err) {
		t.Errorf("no output expected for a failed file, stat error = %v", err)
	}
}

func TestRunRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"zero workers", []string{"--workers", "0"}},
		{"unknown format", []string{"--format", "pdf"}},
		{"same directories", []string{"--src", dir, "--dst", dir}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args := append([]string{"run", "--config", writeConfig(t), "--no-db"}, tt.args...)
			if _, err := execute(t, args...); err == nil {
				t.Errorf("expected an error for %v", tt.args)
			}
		})
	}
}

func TestBuildConfigFlags(t *testing.T) {
	t.Parallel()

	cmd := NewRunCmd()
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("verbose", false, "")
	path := writeConfig(t)
	if err := cmd.Flags().Parse([]string{
		"--config", path,
		"--src", "in",
		"--dst", "out",
		"--format", "md,html",
		"--db", "ledger.db",
		"--verbose",
	}); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if cfg.Source != "in" || cfg.Destination != "out" {
		t.Errorf("directories = %q, %q", cfg.Source, cfg.Destination)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2 from the configuration file", cfg.Workers)
	}
	if len(cfg.Formats) != 2 || cfg.Formats[0] != render.FormatMarkdown || cfg.Formats[1] != render.FormatHTML {
		t.Errorf("Formats = %v", cfg.Formats)
	}
	if cfg.Database != "ledger.db" {
		t.Errorf("Database = %q", cfg.Database)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestBuildConfigNoDB(t *testing.T) {
	t.Parallel()

	cmd := NewRunCmd()
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("verbose", false, "")
	if err := cmd.Flags().Parse([]string{"--config", writeConfig(t), "--db", "ledger.db", "--no-db"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if cfg.Database != "" {
		t.Errorf("Database = %q, want the ledger disabled", cfg.Database)
	}
}
