package model

import "encoding/json"

// ChartKind is the visual form of a chart.
type ChartKind string

const (
	// ChartKindMap is a world choropleth with a per-year timeline.
	ChartKindMap ChartKind = "map"
	// ChartKindBar is a bar chart with one bar per entity.
	ChartKindBar ChartKind = "bar"
	// ChartKindLine is a line chart with one point per year.
	ChartKindLine ChartKind = "line"
)

// String returns the kind as a string.
func (k ChartKind) String() string {
	return string(k)
}

// ChartSpec is a declarative chart description. Options holds the ECharts
// option document that the browser-side library renders.
type ChartSpec struct {
	// ID is the DOM id of the chart container. Unique within a page.
	ID string `json:"id"`

	// Kind is the chart form.
	Kind ChartKind `json:"kind"`

	// Title is the chart title shown above the plot.
	Title string `json:"title"`

	// Points is the number of data points across all series and frames.
	Points int `json:"points"`

	// Options is the ECharts option document.
	Options json.RawMessage `json:"options"`
}

// IsEmpty reports whether the chart has no data points.
func (c ChartSpec) IsEmpty() bool {
	return c.Points == 0
}
