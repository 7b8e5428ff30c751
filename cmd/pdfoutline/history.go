package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfoutline/config"
	"github.com/tsawler/pdfoutline/store"
)

// defaultHistoryLimit is the number of runs listed by default
const defaultHistoryLimit = 20

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded batch runs",
		Long: `History lists the most recent runs recorded in the ledger. Given a run ID
it lists the documents processed in that run instead.

Examples:
  pdfoutline history
  pdfoutline history --limit 5
  pdfoutline history 0b7c5a0e-1d2f-4c1e-9a53-6f2d8e4b1c77`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().String("db", "", "Run ledger path (default: XDG data directory)")
	cmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Maximum number of runs listed")

	return cmd
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, _, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.Database, _ = cmd.Flags().GetString("db")
	}
	if cfg.Database == "" {
		return fmt.Errorf("no run ledger configured")
	}

	ledger, err := store.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open run ledger: %w", err)
	}
	defer ledger.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	if len(args) == 1 {
		return printDocuments(ctx, out, ledger, args[0])
	}

	limit, _ := cmd.Flags().GetInt("limit")
	return printRuns(ctx, out, ledger, limit)
}

func printRuns(ctx context.Context, out io.Writer, ledger *store.Ledger, limit int) error {
	runs, err := ledger.Runs(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSTARTED\tDOCUMENTS\tFAILED\tSOURCE\tDESTINATION")
	for _, r := range runs {
		started := r.StartedAt.Local().Format(time.DateTime)
		if !r.Finished() {
			started += " (unfinished)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			r.ID, started, r.Documents, r.Failed, r.Source, r.Destination)
	}
	return tw.Flush()
}

func printDocuments(ctx context.Context, out io.Writer, ledger *store.Ledger, runID string) error {
	run, err := ledger.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	docs, err := ledger.Documents(ctx, runID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Run %s: %s -> %s\n", run.ID, run.Source, run.Destination)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSTATUS\tENTRIES\tTITLE\tDETAIL")
	for _, d := range docs {
		detail := d.Error
		if detail == "" && d.Override != "" {
			detail = "override: " + d.Override
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", d.File, d.Status, d.Entries, d.Title, detail)
	}
	return tw.Flush()
}
