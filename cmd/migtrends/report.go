package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/migtrends/internal/config"
	"github.com/nao1215/migtrends/internal/model"
	"github.com/nao1215/migtrends/internal/pipeline"
	"github.com/nao1215/migtrends/internal/report"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard's derived data",
		Long: `Report loads the dataset and prints the data behind the dashboard charts:
the color range of the map, yearly totals, the regional ranking and the
focus entity's series. No server is started.

Examples:
  # Human-readable summary on stdout
  migtrends report

  # Markdown summary with a pie chart of the ranking
  migtrends report --markdown -o summary.md

  # JSON for other tools
  migtrends report --json`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	addDatasetFlags(cmd)
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("echo", false,
		"With --output, also print the text summary to stdout")
	cmd.Flags().Bool("show-empty", false,
		"Show sections without data in the text summary")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}
	if cfg.ReportEcho, err = cmd.Flags().GetBool("echo"); err != nil {
		return err
	}
	if cfg.ReportShowEmpty, err = cmd.Flags().GetBool("show-empty"); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cmd.ErrOrStderr(), cfg.Verbose)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := pipeline.Analyze(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return outputReport(cmd.OutOrStdout(), cfg, d.Summary(time.Now()))
}

// outputReport writes summary in the requested format to cfg.ReportFile,
// or to stdout when no file is set. With cfg.ReportEcho the text summary
// is printed to stdout as well.
func outputReport(stdout io.Writer, cfg *config.Config, summary *model.Summary) (err error) {
	output := stdout
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		var f *os.File
		f, err = os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer closeOutput(f, &err)
		output = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewVersionedJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output, report.WithShowEmpty(cfg.ReportShowEmpty))
	}

	if cfg.ReportFile != "" && cfg.ReportEcho {
		w = report.NewMultiWriter(w, report.NewSimpleWriter(stdout, report.WithShowEmpty(cfg.ReportShowEmpty)))
	}

	if _, err = w.Write(summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// closeOutput closes c and stores its error in err unless err is already set.
func closeOutput(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close output file: %w", cerr)
	}
}
