package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/pdfoutline"
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/outline"
	"github.com/tsawler/pdfoutline/render"
)

// ErrSourceCreated is returned by Run when the source directory did not exist.
// It has been created empty for the user to fill.
var ErrSourceCreated = errors.New("source directory created; place your PDF files there")

// Status is the outcome class of one file
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// FileOutcome describes what happened to one input file
type FileOutcome struct {
	File     string        // base name of the input
	Path     string        // full input path
	Status   Status        // outcome class
	Title    string        // inferred title
	Entries  int           // number of outline entries
	Override string        // document-level rule applied, if any
	Outputs  []string      // written files
	Warnings []string      // non-fatal issues
	Duration time.Duration // processing time
	Err      error         // failure cause for StatusFailed
}

// Summary is the result of a batch run
type Summary struct {
	RunID     string
	Processed int
	Succeeded int
	Failed    int
	Skipped   int
	Files     []FileOutcome
	Elapsed   time.Duration
}

// Recorder persists batch runs. Implementations must be safe for concurrent use.
type Recorder interface {
	BeginRun(ctx context.Context, source, destination string) (string, error)
	Record(ctx context.Context, runID string, outcome FileOutcome) error
	FinishRun(ctx context.Context, runID string) error
}

// AnalyzeFunc infers the outline of the PDF at path
type AnalyzeFunc func(ctx context.Context, path string, config outline.Config, logger *slog.Logger) (*model.Result, *outline.Report, []pdfoutline.Warning, error)

// Analyze is the default AnalyzeFunc, reading the file with the pdfoutline API
func Analyze(_ context.Context, path string, config outline.Config, logger *slog.Logger) (*model.Result, *outline.Report, []pdfoutline.Warning, error) {
	return pdfoutline.Open(path).WithConfig(config).WithLogger(logger).Analyze()
}

// Processor runs outline inference over a directory of PDFs
type Processor struct {
	source      string
	destination string
	workers     int
	logger      *slog.Logger
	formats     []render.Format
	config      outline.Config
	recorder    Recorder
	overwrite   bool
	analyze     AnalyzeFunc
}

// New creates a Processor reading PDFs from source and writing to destination.
func New(source, destination string, opts ...Option) *Processor {
	p := &Processor{
		source:      source,
		destination: destination,
		workers:     runtime.NumCPU(),
		formats:     []render.Format{render.FormatJSON},
		config:      outline.DefaultConfig(),
		overwrite:   true,
		analyze:     Analyze,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Run processes every PDF in the source directory. Per-file failures are
// reported in the summary; the returned error is reserved for problems with
// the directories, the recorder, or cancellation of ctx.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	if err := p.config.Validate(); err != nil {
		return summary, fmt.Errorf("invalid configuration: %w", err)
	}

	created, err := ensureSource(p.source)
	if err != nil {
		return summary, err
	}
	if created {
		p.logger.Warn("source directory created", "path", p.source)
		return summary, ErrSourceCreated
	}

	if err := os.MkdirAll(p.destination, 0o755); err != nil {
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}

	files, err := listPDFs(p.source)
	if err != nil {
		return summary, err
	}

	if p.recorder != nil {
		summary.RunID, err = p.recorder.BeginRun(ctx, p.source, p.destination)
		if err != nil {
			return summary, fmt.Errorf("failed to begin run: %w", err)
		}
	}

	p.logger.Info("starting batch",
		"source", p.source,
		"destination", p.destination,
		"files", len(files),
		"workers", p.workers,
	)
	startTime := time.Now()

	// Pre-allocate outcomes to keep input order
	outcomes := make([]FileOutcome, len(files))
	scheduled := make([]bool, len(files))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(p.workers)

	for i, path := range files {
		// Stop scheduling once cancelled; running files finish
		if ctx.Err() != nil {
			break
		}
		scheduled[i] = true

		g.Go(func() error {
			outcome := p.process(ctx, path)

			mu.Lock()
			outcomes[i] = outcome
			mu.Unlock()

			if p.recorder != nil {
				if err := p.recorder.Record(ctx, summary.RunID, outcome); err != nil {
					p.logger.Warn("failed to record outcome", "file", outcome.File, "error", err)
				}
			}
			return nil
		})
	}

	_ = g.Wait() // workers never return errors

	for i, outcome := range outcomes {
		if !scheduled[i] {
			continue
		}
		summary.Files = append(summary.Files, outcome)
		summary.Processed++
		switch outcome.Status {
		case StatusOK:
			summary.Succeeded++
		case StatusFailed:
			summary.Failed++
		case StatusSkipped:
			summary.Skipped++
		}
	}
	summary.Elapsed = time.Since(startTime)

	if p.recorder != nil {
		// The run is closed even when ctx was cancelled
		if err := p.recorder.FinishRun(context.WithoutCancel(ctx), summary.RunID); err != nil {
			p.logger.Warn("failed to finish run", "run", summary.RunID, "error", err)
		}
	}

	p.logger.Info("batch complete",
		"processed", summary.Processed,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"elapsed", summary.Elapsed,
	)

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

// process infers and writes the outline of one file
func (p *Processor) process(ctx context.Context, path string) FileOutcome {
	start := time.Now()
	name := filepath.Base(path)
	outcome := FileOutcome{File: name, Path: path}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	jsonPath := filepath.Join(p.destination, base+render.FormatJSON.Extension())
	if !p.overwrite {
		if _, err := os.Stat(jsonPath); err == nil {
			p.logger.Info("skipped", "file", name, "output", jsonPath)
			outcome.Status = StatusSkipped
			outcome.Duration = time.Since(start)
			return outcome
		}
	}

	p.logger.Info("processing", "file", name)

	result, report, warnings, err := p.analyze(ctx, path, p.config, p.logger)
	if err != nil {
		return p.fail(outcome, start, err)
	}

	outcome.Title = result.Title
	outcome.Entries = len(result.Outline)
	for _, w := range warnings {
		outcome.Warnings = append(outcome.Warnings, w.String())
	}
	if len(warnings) > 0 {
		p.logger.Warn("document warnings", "file", name, "warnings", pdfoutline.FormatWarnings(warnings))
	}
	if report != nil && report.Override != outline.OverrideNone {
		outcome.Override = report.Override.String()
		if report.Override == outline.OverrideForm {
			p.logger.Info("form detected", "file", name, "title", result.Title)
		}
	}

	for _, f := range p.formats {
		out := filepath.Join(p.destination, base+f.Extension())
		if err := writeOutput(out, f, result); err != nil {
			return p.fail(outcome, start, err)
		}
		outcome.Outputs = append(outcome.Outputs, out)
	}

	outcome.Status = StatusOK
	outcome.Duration = time.Since(start)
	p.logger.Info("saved",
		"file", name,
		"output", jsonPath,
		"title", outcome.Title,
		"entries", outcome.Entries,
		"duration", outcome.Duration,
	)
	return outcome
}

func (p *Processor) fail(outcome FileOutcome, start time.Time, err error) FileOutcome {
	outcome.Status = StatusFailed
	outcome.Err = err
	outcome.Duration = time.Since(start)
	p.logger.Error("failed", "file", outcome.File, "error", err)
	return outcome
}

// ensureSource creates the source directory if it is missing and reports
// whether it did.
func ensureSource(source string) (bool, error) {
	info, err := os.Stat(source)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("source %s is not a directory", source)
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(source, 0o755); err != nil {
			return false, fmt.Errorf("failed to create source directory: %w", err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("failed to read source directory: %w", err)
	}
}

// listPDFs returns the regular files with a .pdf extension directly in dir,
// sorted by name.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list source directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// writeOutput renders the result into a file, replacing it if present
func writeOutput(path string, format render.Format, result *model.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := format.Render(f, result); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
