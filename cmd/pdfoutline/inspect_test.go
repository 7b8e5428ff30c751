package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/pdfoutline"
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/outline"
)

func TestInspectRequiresOneFile(t *testing.T) {
	t.Parallel()

	if _, err := execute(t, "inspect"); err == nil {
		t.Error("expected an error without a file argument")
	}
}

func TestInspectUnreadableFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "inspect", "--config", writeConfig(t), path); err == nil {
		t.Error("expected an error for a file that is not a PDF")
	}
}

func TestInspectUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := execute(t, "inspect", "--config", writeConfig(t), "--format", "pdf", "x.pdf"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestPrintReport(t *testing.T) {
	t.Parallel()

	report := &outline.Report{
		Profile: model.StyleProfile{
			BodySize:      12,
			HeadingLevels: map[float64]model.Level{18: model.Level(1), 14: model.Level(2)},
		},
		Pages:      2,
		Blocks:     9,
		Candidates: 4,
		Rejected:   map[outline.Rejection]int{outline.RejectMargin: 2},
		ByStrategy: map[outline.Strategy]int{outline.StrategyFontSize: 3, outline.StrategyNone: 1},
		Override:   outline.OverrideNone,
	}
	warnings := []pdfoutline.Warning{{Page: 2, Message: "could not decode"}}

	var buf bytes.Buffer
	printReport(&buf, report, warnings)
	out := buf.String()

	for _, want := range []string{
		"body size:   12",
		"tier:        18 -> H1",
		"tier:        14 -> H2",
		"rejected:    margin=2",
		"strategy:    font-size=3",
		"strategy:    none=1",
		"warning:     page 2: could not decode",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "tier:        18") > strings.Index(out, "tier:        14") {
		t.Error("tiers must be listed from largest to smallest")
	}
}
