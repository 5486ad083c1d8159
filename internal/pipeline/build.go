package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/migtrends/internal/config"
)

// Build runs the full startup routine for cfg: load, aggregate, chart and
// compose. The returned Dashboard carries the rendered page in HTML.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dashboard, error) {
	if logger == nil {
		logger = slog.Default()
	}

	p := New(WithLogger(logger))
	p.AddSteps(
		NewLoadStep(WithLoadLogger(logger)),
		NewAggregateStep(logger),
		NewChartStep(logger),
		NewComposeStep(),
	)
	return run(ctx, p, cfg)
}

// Analyze loads and aggregates the dataset without building charts.
// It backs the report command.
func Analyze(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dashboard, error) {
	if logger == nil {
		logger = slog.Default()
	}

	p := New(WithLogger(logger))
	p.AddSteps(
		NewLoadStep(WithLoadLogger(logger)),
		NewAggregateStep(logger),
	)
	return run(ctx, p, cfg)
}

func run(ctx context.Context, p *Pipeline, cfg *config.Config) (*Dashboard, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	d := NewDashboard(cfg)
	if err := p.Execute(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
