package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/migtrends/internal/config"
	"github.com/nao1215/migtrends/internal/pipeline"
	"github.com/nao1215/migtrends/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the dashboard and serve it over HTTP",
		Long: `Serve loads the dataset, builds the four dashboard charts and serves the
page on a single route until interrupted.

Examples:
  # Serve the default dataset on http://127.0.0.1:8050/
  migtrends serve

  # Serve another dataset on all interfaces
  migtrends serve --data emigrants.csv --addr 0.0.0.0:8080

  # Follow France instead of Italy
  migtrends serve --focus France

Configuration file (.migtrends) example:
  data: data/total-number-of-emigrants.csv
  addr: 127.0.0.1:8050
  dashboard:
    focusEntity: Italy
    topYear: 2020`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	addDatasetFlags(cmd)
	cmd.Flags().StringP("addr", "a", config.DefaultAddr,
		"Listen address (host:port)")
	cmd.Flags().Int("concurrency", config.DefaultBuildConcurrency,
		"Charts built at once (0 builds all at once)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildServeConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return serve(ctx, cmd, cfg, logger)
}

// buildServeConfig adds the serve-only flags to the shared configuration.
func buildServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		if cfg.Addr, err = flags.GetString("addr"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("concurrency") {
		if cfg.BuildConcurrency, err = flags.GetInt("concurrency"); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// serve builds the dashboard and runs the HTTP server until ctx is done.
func serve(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	d, err := pipeline.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, d.HTML, logger)

	go func() {
		select {
		case addr := <-srv.Ready():
			fmt.Fprintf(cmd.OutOrStdout(), "Dashboard is running on http://%s/\n", addr)
		case <-ctx.Done():
		}
	}()

	return srv.Run(ctx)
}
