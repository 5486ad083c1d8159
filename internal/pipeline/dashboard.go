package pipeline

import (
	"time"

	"github.com/nao1215/migtrends/internal/config"
	"github.com/nao1215/migtrends/internal/model"
	"github.com/nao1215/migtrends/internal/page"
)

// Dashboard is the state built up by the pipeline steps.
// Once Build returns it is only read.
type Dashboard struct {
	// Config holds the parameters of the build.
	Config *config.Config

	// Table is the loaded dataset.
	Table *model.Table

	// ColorRange is the clamped color domain of the map.
	ColorRange model.ColorRange

	// YearlyTotals, TopEntities and FocusSeries are the derived tables
	// behind the bar and line charts.
	YearlyTotals model.DerivedTable
	TopEntities  model.DerivedTable
	FocusSeries  model.DerivedTable

	// Charts are the four chart specs in page order.
	Charts *page.Charts

	// Page is the composed layout and HTML its rendering.
	Page *model.Page
	HTML []byte

	// Completed lists the names of the steps that finished.
	Completed []string
}

// NewDashboard creates an empty Dashboard for cfg.
func NewDashboard(cfg *config.Config) *Dashboard {
	return &Dashboard{Config: cfg}
}

// Summary returns the derived data for the report writers.
func (d *Dashboard) Summary(now time.Time) *model.Summary {
	s := &model.Summary{
		Source:       d.Table.Source(),
		GeneratedAt:  now.UTC(),
		Records:      d.Table.Len(),
		ColorRange:   d.ColorRange,
		YearlyTotals: d.YearlyTotals,
		TopEntities:  d.TopEntities,
		FocusSeries:  d.FocusSeries,
	}
	if d.Config != nil {
		s.TopYear = d.Config.TopYear
		s.FocusEntity = d.Config.FocusEntity
	}
	return s
}
