package aggregate

import (
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/nao1215/migtrends/internal/model"
)

// ColorScaleCap is the upper bound of the map color scale. A few countries
// emit far more emigrants than the rest; without the cap they would push
// every other country into the lowest color band.
const ColorScaleCap = 10_500_000

// Derived table names.
const (
	NameYearlyTotals = "yearly_totals"
	NameTopEntities  = "top_entities"
	NameEntitySeries = "entity_series"
	NameYearSlice    = "year_slice"
)

// Frame column names.
const (
	colOrder     = "Order"
	colEntity    = "Entity"
	colYear      = "Year"
	colEmigrants = "Emigrants"
)

// frame converts table into a data frame. The Order column holds the
// table position of each record and breaks ties when sorting.
func frame(table *model.Table) dataframe.DataFrame {
	n := table.Len()
	order := make([]int, n)
	entities := make([]string, n)
	years := make([]int, n)
	counts := make([]float64, n)
	for i, r := range table.Records() {
		order[i] = i
		entities[i] = r.Entity
		years[i] = r.Year
		counts[i] = r.Emigrants
	}

	return dataframe.New(
		series.New(order, series.Int, colOrder),
		series.New(entities, series.String, colEntity),
		series.New(years, series.Int, colYear),
		series.New(counts, series.Float, colEmigrants),
	)
}

// rows reads the rows of df. countCol names the count column; entity
// replaces the Entity column when df has none.
func rows(df dataframe.DataFrame, countCol, entity string) []model.Row {
	out := []model.Row{}
	if df.Err != nil || df.Nrow() == 0 {
		return out
	}

	years, err := df.Col(colYear).Int()
	if err != nil {
		return out
	}
	counts := df.Col(countCol).Float()

	var entities []string
	if hasColumn(df, colEntity) {
		entities = df.Col(colEntity).Records()
	}

	for i := range years {
		r := model.Row{Entity: entity, Year: years[i], Emigrants: counts[i]}
		if entities != nil {
			r.Entity = entities[i]
		}
		out = append(out, r)
	}
	return out
}

// hasColumn reports whether df has a column called name.
func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// ColorRange returns the color domain of the map: the smallest count in
// table and the largest count clamped to limit. A non-positive limit
// disables clamping. An empty table yields the zero range.
//
// The result always satisfies Min <= Max: if every count exceeds limit,
// both bounds equal limit.
func ColorRange(table *model.Table, limit float64) model.ColorRange {
	if table.Len() == 0 {
		return model.ColorRange{}
	}

	counts := frame(table).Col(colEmigrants)
	lo, hi := counts.Min(), counts.Max()

	if limit > 0 {
		hi = math.Min(hi, limit)
		lo = math.Min(lo, hi)
	}
	return model.ColorRange{Min: lo, Max: hi}
}

// YearlyTotals sums counts per year, ordered by year ascending.
func YearlyTotals(table *model.Table) model.DerivedTable {
	return model.DerivedTable{
		Name: NameYearlyTotals,
		Rows: sumByYear(frame(table), ""),
	}
}

// TopEntitiesForYear returns the n rows of year whose entity is in
// allowlist, largest count first. Fewer than n matching rows is not an
// error. Rows with equal counts keep their table order.
func TopEntitiesForYear(table *model.Table, allowlist []string, year, n int) model.DerivedTable {
	out := model.DerivedTable{Name: NameTopEntities, Rows: []model.Row{}}
	if n <= 0 || len(allowlist) == 0 || table.Len() == 0 {
		return out
	}

	df := frame(table).
		Filter(dataframe.F{Colname: colYear, Comparator: series.Eq, Comparando: year}).
		Filter(dataframe.F{Colname: colEntity, Comparator: series.In, Comparando: allowlist})
	if df.Err != nil || df.Nrow() == 0 {
		return out
	}

	df = df.Arrange(dataframe.RevSort(colEmigrants), dataframe.Sort(colOrder))
	out.Rows = rows(df, colEmigrants, "")
	if len(out.Rows) > n {
		out.Rows = out.Rows[:n]
	}
	return out
}

// SeriesForEntity sums the counts of entity per year, ordered by year
// ascending. Each row carries the entity name.
func SeriesForEntity(table *model.Table, entity string) model.DerivedTable {
	out := model.DerivedTable{Name: NameEntitySeries, Rows: []model.Row{}}
	if table.Len() == 0 {
		return out
	}

	df := frame(table).Filter(dataframe.F{Colname: colEntity, Comparator: series.Eq, Comparando: entity})
	out.Rows = sumByYear(df, entity)
	return out
}

// Years returns the distinct years of table in ascending order.
func Years(table *model.Table) []int {
	return YearlyTotals(table).Years()
}

// Slice returns the records of one year in table order.
func Slice(table *model.Table, year int) model.DerivedTable {
	out := model.DerivedTable{Name: NameYearSlice, Rows: []model.Row{}}
	if table.Len() == 0 {
		return out
	}

	df := frame(table).Filter(dataframe.F{Colname: colYear, Comparator: series.Eq, Comparando: year})
	out.Rows = rows(df, colEmigrants, "")
	return out
}

// sumByYear groups df by year, sums the counts and sorts by year. Each row
// carries entity.
func sumByYear(df dataframe.DataFrame, entity string) []model.Row {
	if df.Err != nil || df.Nrow() == 0 {
		return []model.Row{}
	}

	sums := df.GroupBy(colYear).Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_SUM},
		[]string{colEmigrants},
	)
	if sums.Err != nil {
		return []model.Row{}
	}

	return rows(sums.Arrange(dataframe.Sort(colYear)), sumColumn(sums), entity)
}

// sumColumn returns the name gota gives the aggregated count column,
// e.g. "Emigrants_SUM".
func sumColumn(df dataframe.DataFrame) string {
	for _, n := range df.Names() {
		if n != colEmigrants && strings.HasPrefix(n, colEmigrants+"_") {
			return n
		}
	}
	return colEmigrants
}
