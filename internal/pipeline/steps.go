package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/nao1215/migtrends/internal/aggregate"
	"github.com/nao1215/migtrends/internal/chart"
	"github.com/nao1215/migtrends/internal/config"
	"github.com/nao1215/migtrends/internal/dataset"
	"github.com/nao1215/migtrends/internal/model"
	"github.com/nao1215/migtrends/internal/page"
)

// DOM ids of the dashboard charts.
const (
	ChartIDMap     = "emigration-map"
	ChartIDBar     = "top-continents"
	ChartIDGlobal  = "global-trend"
	ChartIDCountry = "country-trend"
)

// Axis labels shared by the bar and line charts.
const (
	axisEntity    = "Entity"
	axisYear      = "Year"
	axisEmigrants = "Total number of emigrants"
)

// LoaderFunc reads a dataset file into a Table.
type LoaderFunc func(ctx context.Context, path string) (*model.Table, error)

// LoadStep reads the dataset named by Config.DataPath.
type LoadStep struct {
	load   LoaderFunc
	logger *slog.Logger
}

// LoadStepOption configures a LoadStep.
type LoadStepOption func(*LoadStep)

// WithLoader replaces the dataset loader. The default is dataset.Load.
func WithLoader(fn LoaderFunc) LoadStepOption {
	return func(s *LoadStep) {
		s.load = fn
	}
}

// WithLoadLogger sets a custom logger for the load step.
func WithLoadLogger(logger *slog.Logger) LoadStepOption {
	return func(s *LoadStep) {
		s.logger = logger
	}
}

// NewLoadStep creates a new load step.
func NewLoadStep(opts ...LoadStepOption) *LoadStep {
	s := &LoadStep{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.load == nil {
		s.load = func(ctx context.Context, path string) (*model.Table, error) {
			return dataset.Load(ctx, path, dataset.WithLogger(s.logger))
		}
	}
	return s
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do loads the dataset into d.Table.
func (s *LoadStep) Do(ctx context.Context, d *Dashboard) error {
	if d.Config == nil {
		return ErrNoConfig
	}

	table, err := s.load(ctx, d.Config.DataPath)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	d.Table = table

	s.logger.Info("dataset loaded",
		"path", table.Source(),
		"records", table.Len(),
	)
	return nil
}

// AggregateStep computes the color range and the derived tables.
type AggregateStep struct {
	logger *slog.Logger
}

// NewAggregateStep creates a new aggregation step.
func NewAggregateStep(logger *slog.Logger) *AggregateStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &AggregateStep{logger: logger}
}

// Name returns the step name.
func (s *AggregateStep) Name() string {
	return "aggregate"
}

// Do fills the derived fields of d from d.Table.
func (s *AggregateStep) Do(_ context.Context, d *Dashboard) error {
	if d.Config == nil {
		return ErrNoConfig
	}
	if d.Table == nil {
		return ErrNoTable
	}
	cfg := d.Config

	d.ColorRange = aggregate.ColorRange(d.Table, cfg.ColorCap)
	d.YearlyTotals = aggregate.YearlyTotals(d.Table)
	d.TopEntities = aggregate.TopEntitiesForYear(d.Table, cfg.Regions, cfg.TopYear, cfg.TopN)
	d.FocusSeries = aggregate.SeriesForEntity(d.Table, cfg.FocusEntity)

	s.logger.Debug("dataset aggregated",
		"records", d.Table.Len(),
		"emigrants", d.Table.Total(),
		"years", d.YearlyTotals.Len(),
		"ranked", d.TopEntities.Len(),
	)

	// Empty derived tables are valid; the charts are drawn without data.
	if d.TopEntities.IsEmpty() {
		s.logger.Warn("no allowlisted region has data for the ranking year",
			"year", cfg.TopYear,
		)
	}
	if d.FocusSeries.IsEmpty() {
		s.logger.Warn("focus entity not found in dataset",
			"entity", cfg.FocusEntity,
		)
	}
	return nil
}

// ChartStep builds the four charts concurrently.
type ChartStep struct {
	logger *slog.Logger
}

// NewChartStep creates a new chart step.
func NewChartStep(logger *slog.Logger) *ChartStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartStep{logger: logger}
}

// Name returns the step name.
func (s *ChartStep) Name() string {
	return "chart"
}

// Do builds d.Charts from the derived data.
func (s *ChartStep) Do(ctx context.Context, d *Dashboard) error {
	if d.Config == nil {
		return ErrNoConfig
	}
	if d.Table == nil {
		return ErrNoTable
	}
	cfg := d.Config
	host := cfg.AssetsHost

	jobs := []chart.Job{
		{
			Name: "map",
			Build: func() (model.ChartSpec, error) {
				return chart.BuildMap(chart.MapInput{
					Table:      d.Table,
					ColorRange: d.ColorRange,
					Resolver:   chart.NewResolver(cfg.Aliases),
				}, chart.Style{
					ID:         ChartIDMap,
					Title:      MapTitle(aggregate.Years(d.Table)),
					AssetsHost: host,
				})
			},
		},
		{
			Name: "bar",
			Build: func() (model.ChartSpec, error) {
				return chart.BuildBar(d.TopEntities, chart.Style{
					ID:         ChartIDBar,
					Title:      fmt.Sprintf("Top Continents by Emigration in %d", cfg.TopYear),
					XAxisName:  axisEntity,
					YAxisName:  axisEmigrants,
					AssetsHost: host,
				})
			},
		},
		{
			Name: "global",
			Build: func() (model.ChartSpec, error) {
				return chart.BuildLine(d.YearlyTotals, chart.Style{
					ID:         ChartIDGlobal,
					Title:      "Total Emigration Over Time",
					XAxisName:  axisYear,
					YAxisName:  axisEmigrants,
					AssetsHost: host,
				})
			},
		},
		{
			Name: "country",
			Build: func() (model.ChartSpec, error) {
				return chart.BuildLine(d.FocusSeries, chart.Style{
					ID:         ChartIDCountry,
					Title:      fmt.Sprintf("Total Emigration in %s Over Time", cfg.FocusEntity),
					XAxisName:  axisYear,
					YAxisName:  axisEmigrants,
					AssetsHost: host,
				})
			},
		},
	}

	specs, err := chart.BuildAll(ctx, jobs, cfg.BuildConcurrency, s.logger)
	if err != nil {
		return err
	}

	d.Charts = &page.Charts{
		Map:     specs[0],
		Bar:     specs[1],
		Global:  specs[2],
		Country: specs[3],
	}
	return nil
}

// MapTitle returns the choropleth title for the given sorted years.
func MapTitle(years []int) string {
	const base = "Global Emigration Trends"
	if len(years) == 0 {
		return base
	}
	first, last := years[0], years[len(years)-1]
	if first == last {
		return fmt.Sprintf("%s (%d)", base, first)
	}
	return fmt.Sprintf("%s (%d-%d)", base, first, last)
}

// ComposeStep lays out the page and renders it to HTML.
type ComposeStep struct{}

// NewComposeStep creates a new compose step.
func NewComposeStep() *ComposeStep {
	return &ComposeStep{}
}

// Name returns the step name.
func (s *ComposeStep) Name() string {
	return "compose"
}

// Do sets d.Page and d.HTML.
func (s *ComposeStep) Do(_ context.Context, d *Dashboard) error {
	if d.Config == nil {
		return ErrNoConfig
	}
	if d.Charts == nil {
		return ErrNoCharts
	}

	p := page.Compose(Content(d.Config, aggregate.Years(d.Table)), *d.Charts)
	withMap := slices.ContainsFunc(p.Charts(), func(c *model.ChartSpec) bool {
		return c.Kind == model.ChartKindMap
	})
	body, err := page.RenderBytes(p, chart.Assets(d.Config.AssetsHost, withMap))
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	d.Page = p
	d.HTML = body
	return nil
}

// Year references in the published captions.
const (
	publishedRange   = "from 1990 to 2020"
	publishedTopYear = "in 2020"
)

// Content returns the page text for cfg: the published wording with the
// configured overrides applied. years are the sorted dataset years. Unless
// overridden, the captions name the configured focus entity, ranking year
// and the dataset's year range.
func Content(cfg *config.Config, years []int) page.Content {
	c := page.DefaultContent()
	if cfg.FocusEntity != "" && cfg.FocusEntity != config.DefaultFocusEntity {
		c.CountryCaption = strings.ReplaceAll(c.CountryCaption, config.DefaultFocusEntity, cfg.FocusEntity)
	}
	if cfg.TopYear != config.DefaultTopYear {
		c.BarCaption = strings.ReplaceAll(c.BarCaption, publishedTopYear, fmt.Sprintf("in %d", cfg.TopYear))
	}
	if len(years) > 0 {
		first, last := years[0], years[len(years)-1]
		c.MapCaption = strings.ReplaceAll(c.MapCaption, publishedRange, fmt.Sprintf("from %d to %d", first, last))
	}

	t := cfg.Text
	if t.Title != "" {
		c.Title = t.Title
	}
	if t.Intro != "" {
		c.Intro = t.Intro
	}
	if t.MapCaption != "" {
		c.MapCaption = t.MapCaption
	}
	if t.BarCaption != "" {
		c.BarCaption = t.BarCaption
	}
	if t.GlobalCaption != "" {
		c.GlobalCaption = t.GlobalCaption
	}
	if t.CountryCaption != "" {
		c.CountryCaption = t.CountryCaption
	}
	return c
}
