package chart

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/migtrends/internal/model"
)

// Job is one chart to build.
type Job struct {
	// Name identifies the job in logs and errors.
	Name string

	// Build produces the chart. It must not modify shared state.
	Build func() (model.ChartSpec, error)
}

// BuildAll runs jobs concurrently with at most limit builders at a time
// (limit <= 0 means one per job) and returns the charts in job order.
// The first failure cancels the remaining jobs.
func BuildAll(ctx context.Context, jobs []Job, limit int, logger *slog.Logger) ([]model.ChartSpec, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if limit <= 0 {
		limit = len(jobs)
	}

	results := make([]model.ChartSpec, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			start := time.Now()
			spec, err := job.Build()
			if err != nil {
				return fmt.Errorf("failed to build %s chart: %w", job.Name, err)
			}

			// Each goroutine writes its own index.
			results[i] = spec

			logger.Debug("chart built",
				"chart", job.Name,
				"points", spec.Points,
				"elapsed", time.Since(start),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
