package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/migtrends/internal/config"
	applog "github.com/nao1215/migtrends/internal/log"
)

// addDatasetFlags registers the flags shared by serve and report.
func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", config.DefaultDataPath,
		"Dataset file (CSV, or SQLite written by \"migtrends convert\")")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .migtrends in current or home directory)")
	cmd.Flags().String("focus", config.DefaultFocusEntity,
		"Entity plotted by the single-country chart")
	cmd.Flags().Int("year", config.DefaultTopYear,
		"Year ranked by the bar chart")
	cmd.Flags().Int("top", config.DefaultTopN,
		"Maximum number of bars in the ranking chart")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// the command's flags, in increasing priority. Only flags set on the
// command line override file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly named config file must exist; otherwise a missing file
	// just means defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(file)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		if cfg.DataPath, err = flags.GetString("data"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("focus") {
		if cfg.FocusEntity, err = flags.GetString("focus"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("year") {
		if cfg.TopYear, err = flags.GetInt("year"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("top") {
		if cfg.TopN, err = flags.GetInt("top"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// getLogJSONFlag reports whether logs should be written as JSON.
func getLogJSONFlag(cmd *cobra.Command) bool {
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return false
	}
	return logJSON
}

// setupLogger creates the process logger for cmd on w.
func setupLogger(cmd *cobra.Command, w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if getLogJSONFlag(cmd) {
		return applog.NewJSONLogger(w, verbose)
	}
	return applog.NewLogger(w, verbose)
}
