package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfoutline/batch"
	"github.com/tsawler/pdfoutline/config"
	applog "github.com/tsawler/pdfoutline/internal/log"
	"github.com/tsawler/pdfoutline/render"
	"github.com/tsawler/pdfoutline/store"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Infer the outline of every PDF in a directory",
		Long: `Run processes every .pdf file directly inside the source directory and
writes <name>.json (and optionally <name>.md and <name>.html) to the
destination directory.

A file that cannot be read is reported and skipped; the remaining files are
still processed. If the source directory does not exist it is created.

Examples:
  # Use the defaults (pdfs/ -> output/)
  pdfoutline run

  # Custom directories, four workers, Markdown and HTML in addition to JSON
  pdfoutline run --src in --dst out -w 4 --format md,html

  # Do not record the run in the ledger
  pdfoutline run --no-db`,
		Args: cobra.NoArgs,
		RunE: runBatchCmd,
	}

	addRunFlags(cmd)

	return cmd
}

// addRunFlags registers the flags of the run command on cmd
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("src", "s", config.DefaultSource, "Directory containing the input PDF files")
	cmd.Flags().StringP("dst", "d", config.DefaultDestination, "Directory the outputs are written to")
	cmd.Flags().IntP("workers", "w", 0, "Number of files processed concurrently (default: number of CPUs)")
	cmd.Flags().StringSliceP("format", "f", nil, "Additional output formats: json, md, html")
	cmd.Flags().String("db", "", "Run ledger path (default: XDG data directory)")
	cmd.Flags().Bool("no-db", false, "Do not record the run in the ledger")
	cmd.Flags().Bool("skip-existing", false, "Skip files whose JSON output already exists")
}

// runBatchCmd executes the run command.
func runBatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := applog.New(cmd.ErrOrStderr(), cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	skip, _ := cmd.Flags().GetBool("skip-existing")
	opts := []batch.Option{
		batch.WithWorkers(cfg.Workers),
		batch.WithLogger(logger),
		batch.WithFormats(cfg.Formats...),
		batch.WithConfig(cfg.Heuristics),
		batch.WithOverwrite(!skip),
	}

	if cfg.Database != "" {
		ledger, err := store.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to open run ledger: %w", err)
		}
		defer func() {
			if err := ledger.Close(); err != nil {
				logger.Warn("failed to close run ledger", "error", err)
			}
		}()
		logger.Debug("recording run", "database", ledger.Path())
		opts = append(opts, batch.WithRecorder(ledger))
	}

	return runBatch(ctx, cmd.OutOrStdout(), cfg, logger, opts...)
}

// runBatch runs the processor and prints the summary to out
func runBatch(ctx context.Context, out io.Writer, cfg *config.Config, logger *slog.Logger, opts ...batch.Option) error {
	summary, err := batch.New(cfg.Source, cfg.Destination, opts...).Run(ctx)
	if errors.Is(err, batch.ErrSourceCreated) {
		fmt.Fprintf(out, "Created %s; place your PDF files there and run again.\n", cfg.Source)
		return nil
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		logger.Warn("run interrupted")
	}

	printSummary(out, summary)
	return nil
}

// printSummary writes a human readable summary of a batch run
func printSummary(out io.Writer, summary batch.Summary) {
	if summary.Processed == 0 {
		fmt.Fprintln(out, "No PDF files found.")
		return
	}

	fmt.Fprintf(out, "Processed %d file(s) in %s: %d ok, %d failed, %d skipped\n",
		summary.Processed, summary.Elapsed.Round(time.Millisecond), summary.Succeeded, summary.Failed, summary.Skipped)
	for _, f := range summary.Files {
		if f.Status == batch.StatusFailed {
			fmt.Fprintf(out, "  failed: %s: %v\n", f.File, f.Err)
		}
	}
	if summary.RunID != "" {
		fmt.Fprintf(out, "Run ID: %s\n", summary.RunID)
	}
}

// buildConfig resolves the configuration file and overlays the flags
// that were set explicitly.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, _, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("src") {
		cfg.Source, _ = flags.GetString("src")
	}
	if flags.Changed("dst") {
		cfg.Destination, _ = flags.GetString("dst")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("format") {
		names, _ := flags.GetStringSlice("format")
		formats, err := render.ParseFormats(names)
		if err != nil {
			return nil, err
		}
		cfg.Formats = formats
	}
	if flags.Changed("db") {
		cfg.Database, _ = flags.GetString("db")
	}
	if noDB, _ := flags.GetBool("no-db"); noDB {
		cfg.Database = ""
	}
	cfg.Verbose, _ = flags.GetBool("verbose")

	return cfg, nil
}
