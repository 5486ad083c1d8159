package chart

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/nao1215/migtrends/internal/aggregate"
	"github.com/nao1215/migtrends/internal/model"
)

// ErrNoID is returned when a builder is called without Style.ID.
var ErrNoID = errors.New("chart id is required")

// initOpts returns the initialization options shared by all builders.
func initOpts(s Style) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle:  s.Title,
		ChartID:    s.ID,
		AssetsHost: s.AssetsHost,
	})
}

// BuildBar builds a bar chart with one bar per row of derived:
// the category is the entity, the bar height its count.
func BuildBar(derived model.DerivedTable, style Style) (model.ChartSpec, error) {
	s := style.withDefaults()
	if s.ID == "" {
		return model.ChartSpec{}, ErrNoID
	}

	categories := derived.Entities()
	values := make([]opts.BarData, 0, derived.Len())
	for i, r := range derived.Rows {
		values = append(values, opts.BarData{Name: categories[i], Value: r.Emigrants})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(s),
		charts.WithTitleOpts(opts.Title{Title: s.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Name: s.XAxisName, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: s.YAxisName}),
	)
	bar.SetXAxis(categories).AddSeries(s.SeriesName, values)

	return finish(bar, model.ChartKindBar, s, len(values))
}

// BuildLine builds a line chart with one marked point per row of derived:
// x is the year, y the summed count.
func BuildLine(derived model.DerivedTable, style Style) (model.ChartSpec, error) {
	s := style.withDefaults()
	if s.ID == "" {
		return model.ChartSpec{}, ErrNoID
	}

	years := make([]string, 0, derived.Len())
	for _, y := range derived.Years() {
		years = append(years, strconv.Itoa(y))
	}
	values := make([]opts.LineData, 0, derived.Len())
	for _, r := range derived.Rows {
		values = append(values, opts.LineData{Value: r.Emigrants})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		initOpts(s),
		charts.WithTitleOpts(opts.Title{Title: s.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Name: s.XAxisName, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: s.YAxisName}),
	)
	line.SetXAxis(years).AddSeries(s.SeriesName, values,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
	)

	return finish(line, model.ChartKindLine, s, len(values))
}

// MapInput is the data of the choropleth.
type MapInput struct {
	// Table is the base dataset; one frame is built per year.
	Table *model.Table

	// ColorRange is the color domain, usually aggregate.ColorRange.
	ColorRange model.ColorRange

	// Resolver maps entity names to world map regions. Nil uses the
	// built-in aliases.
	Resolver *Resolver
}

// BuildMap builds a world choropleth colored by emigrant count with one
// timeline frame per year. The earliest year is shown first.
func BuildMap(in MapInput, style Style) (model.ChartSpec, error) {
	s := style.withDefaults()
	if s.ID == "" {
		return model.ChartSpec{}, ErrNoID
	}
	resolver := in.Resolver
	if resolver == nil {
		resolver = NewResolver(nil)
	}

	years := aggregate.Years(in.Table)
	points := 0
	frames := make([]any, 0, len(years))
	var base document

	for _, year := range years {
		slice := aggregate.Slice(in.Table, year)
		data := make([]opts.MapData, 0, slice.Len())
		for _, r := range slice.Rows {
			data = append(data, opts.MapData{Name: resolver.Resolve(r.Entity), Value: r.Emigrants})
		}
		points += len(data)

		m := newMap(s, in.ColorRange)
		m.AddSeries(s.SeriesName, data)

		doc, err := export(m)
		if err != nil {
			return model.ChartSpec{}, fmt.Errorf("failed to build map frame %d: %w", year, err)
		}
		frames = append(frames, map[string]any{
			"title":  map[string]any{"text": s.Title, "subtext": strconv.Itoa(year)},
			"series": doc["series"],
		})
		if base == nil {
			base = doc
		}
	}

	if base == nil {
		// No data at all: an empty map with the color scale.
		m := newMap(s, in.ColorRange)
		m.AddSeries(s.SeriesName, []opts.MapData{})
		doc, err := export(m)
		if err != nil {
			return model.ChartSpec{}, err
		}
		doc.styleTitle(s.TitleFont, s.TitleSize)
		return encodeSpec(doc, model.ChartKindMap, s, 0)
	}

	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y)
	}
	base["timeline"] = map[string]any{
		"axisType":     "category",
		"data":         labels,
		"currentIndex": 0,
		"autoPlay":     false,
		"playInterval": 1000,
		"bottom":       0,
	}

	doc := document{
		"baseOption": map[string]any(base),
		"options":    frames,
	}
	base.styleTitle(s.TitleFont, s.TitleSize)
	return encodeSpec(doc, model.ChartKindMap, s, points)
}

// newMap creates a world map chart with the shared global options.
func newMap(s Style, cr model.ColorRange) *charts.Map {
	m := charts.NewMap()
	m.RegisterMapType(WorldMap)
	m.SetGlobalOptions(
		initOpts(s),
		charts.WithTitleOpts(opts.Title{Title: s.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item", Formatter: "{b}<br/>{c}"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(cr.Min),
			Max:        float32(cr.Max),
			InRange:    &opts.VisualMapInRange{Color: s.Palette},
		}),
	)
	return m
}

// finish exports c and wraps it into a ChartSpec.
func finish(c echartsChart, kind model.ChartKind, s Style, points int) (model.ChartSpec, error) {
	doc, err := export(c)
	if err != nil {
		return model.ChartSpec{}, err
	}
	doc.styleTitle(s.TitleFont, s.TitleSize)
	return encodeSpec(doc, kind, s, points)
}

// encodeSpec serializes doc into a ChartSpec.
func encodeSpec(doc document, kind model.ChartKind, s Style, points int) (model.ChartSpec, error) {
	raw, err := doc.encode()
	if err != nil {
		return model.ChartSpec{}, err
	}
	return model.ChartSpec{
		ID:      s.ID,
		Kind:    kind,
		Title:   s.Title,
		Points:  points,
		Options: raw,
	}, nil
}
