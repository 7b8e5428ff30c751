package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Invoked without a subcommand it
// behaves like "run".
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdfoutline",
		Short: "Infer titles and heading outlines from PDF files",
		Long: `pdfoutline reads every PDF in a source directory, infers the document
title and a hierarchical H1/H2/H3 outline from the text layout, and writes
the result as JSON to a destination directory.

Running pdfoutline without a subcommand is the same as "pdfoutline run".`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runBatchCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: ./pdfoutline.yaml or the XDG config directory)")
	addRunFlags(cmd)

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
