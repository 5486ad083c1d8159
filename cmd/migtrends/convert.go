package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/migtrends/internal/config"
	"github.com/nao1215/migtrends/internal/database"
	"github.com/nao1215/migtrends/internal/dataset"
)

// NewConvertCmd creates the convert command.
func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Import a CSV dataset into a SQLite file",
		Long: `Convert parses a CSV dataset and stores its records in a SQLite file that
"serve" and "report" accept in place of the CSV. Records already in the
file are replaced.

Examples:
  # Import into the XDG data directory (~/.local/share/migtrends/migtrends.db)
  migtrends convert --data data/total-number-of-emigrants.csv

  # Import into a specific file
  migtrends convert --data emigrants.csv -o emigrants.db`,
		Args: cobra.NoArgs,
		RunE: runConvertCmd,
	}

	cmd.Flags().StringP("data", "d", config.DefaultDataPath,
		"CSV dataset to import")
	cmd.Flags().StringP("output", "o", "",
		"SQLite file to write (default: "+database.DefaultFileName+" in the XDG data directory)")

	return cmd
}

// runConvertCmd executes the convert command.
func runConvertCmd(cmd *cobra.Command, _ []string) error {
	input, err := cmd.Flags().GetString("data")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output == "" {
		output = filepath.Join(config.XDGDataDir(), database.DefaultFileName)
	}

	logger := setupLogger(cmd, cmd.ErrOrStderr(), getVerboseFlag(cmd))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	table, err := dataset.LoadCSV(input, dataset.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	store, err := database.Open(output, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	if err := store.ReplaceTable(ctx, table); err != nil {
		return err
	}
	logger.Info("dataset imported", "source", input, "database", store.Path(), "records", table.Len())

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records from %s into %s\n", table.Len(), input, store.Path())
	return nil
}
