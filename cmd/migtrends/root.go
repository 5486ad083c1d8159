package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for migtrends.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migtrends",
		Short: "Dashboard of global emigration trends",
		Long: `migtrends loads a dataset of emigrant counts per country and year,
derives yearly totals, a regional ranking and a single-country series,
and serves them as an interactive dashboard with four charts.

The dataset is a CSV file with the columns "Entity", "Year" and
"Total number of emigrants", or a SQLite file written by "migtrends convert".`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewConvertCmd())
	cmd.AddCommand(NewInitCmd())
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
