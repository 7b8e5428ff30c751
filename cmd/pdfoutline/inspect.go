package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfoutline"
	"github.com/tsawler/pdfoutline/config"
	applog "github.com/tsawler/pdfoutline/internal/log"
	"github.com/tsawler/pdfoutline/outline"
	"github.com/tsawler/pdfoutline/render"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file.pdf>",
		Short: "Print the outline of one PDF and how it was inferred",
		Long: `Inspect infers the title and outline of a single PDF, prints the result,
and then reports the font statistics, filter rejections and level strategies
behind it. Nothing is written to disk.

Examples:
  pdfoutline inspect report.pdf
  pdfoutline inspect --format md report.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: runInspectCmd,
	}

	cmd.Flags().StringP("format", "f", string(render.FormatJSON), "Result format: json, md, html")

	return cmd
}

func runInspectCmd(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, _, err := config.Load(configPath)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("format")
	format, err := render.FormatFor(name)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := applog.New(cmd.ErrOrStderr(), verbose)

	result, report, warnings, err := pdfoutline.Open(args[0]).
		WithConfig(cfg.Heuristics).
		WithLogger(logger).
		Analyze()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := format.Render(out, result); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	fmt.Fprintln(out)
	printReport(out, report, warnings)

	return nil
}

// printReport writes the analysis report in a fixed order
func printReport(out io.Writer, report *outline.Report, warnings []pdfoutline.Warning) {
	fmt.Fprintln(out, "Analysis:")
	fmt.Fprintf(out, "  pages:       %d\n", report.Pages)
	fmt.Fprintf(out, "  blocks:      %d\n", report.Blocks)
	fmt.Fprintf(out, "  body size:   %g\n", report.Profile.BodySize)

	for _, size := range report.Profile.Sizes() {
		level, _ := report.Profile.LevelFor(size)
		fmt.Fprintf(out, "  tier:        %g -> %s\n", size, level)
	}

	fmt.Fprintf(out, "  candidates:  %d\n", report.Candidates)
	for _, r := range []outline.Rejection{
		outline.RejectEmpty,
		outline.RejectMargin,
		outline.RejectWordCount,
		outline.RejectUppercase,
	} {
		if n := report.Rejected[r]; n > 0 {
			fmt.Fprintf(out, "  rejected:    %s=%d\n", r, n)
		}
	}
	for _, s := range []outline.Strategy{
		outline.StrategyNumbered,
		outline.StrategyFontSize,
		outline.StrategyBold,
		outline.StrategyNone,
	} {
		if n := report.ByStrategy[s]; n > 0 {
			fmt.Fprintf(out, "  strategy:    %s=%d\n", s, n)
		}
	}

	fmt.Fprintf(out, "  duplicates:  %d\n", report.Duplicates)
	fmt.Fprintf(out, "  override:    %s\n", report.Override)

	for _, w := range warnings {
		fmt.Fprintf(out, "  warning:     %s\n", w)
	}
}
