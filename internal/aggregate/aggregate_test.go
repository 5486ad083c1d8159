package aggregate

import (
	"reflect"
	"testing"

	"github.com/nao1215/migtrends/internal/model"
)

func testTable() *model.Table {
	return model.NewTable("test.csv", []model.Record{
		{Entity: "Italy", Year: 1990, Emigrants: 100},
		{Entity: "Italy", Year: 1991, Emigrants: 200},
		{Entity: "Europe", Year: 2020, Emigrants: 5_000_000},
		{Entity: "Asia", Year: 2020, Emigrants: 20_000_000},
		{Entity: "Africa", Year: 2020, Emigrants: 3_000_000},
		{Entity: "France", Year: 2020, Emigrants: 4_000_000},
		{Entity: "Oceania", Year: 2020, Emigrants: 3_000_000},
	})
}

var continents = []string{"Africa", "Asia", "Europe", "North America", "Oceania", "South America"}

func TestColorRange(t *testing.T) {
	t.Parallel()

	t.Run("clamps the maximum to the cap", func(t *testing.T) {
		t.Parallel()

		got := ColorRange(testTable(), ColorScaleCap)
		want := model.ColorRange{Min: 100, Max: ColorScaleCap}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("keeps the maximum below the cap", func(t *testing.T) {
		t.Parallel()

		table := model.NewTable("", []model.Record{
			{Entity: "A", Year: 2000, Emigrants: 10},
			{Entity: "B", Year: 2000, Emigrants: 30},
		})
		got := ColorRange(table, ColorScaleCap)
		if got.Min != 10 || got.Max != 30 {
			t.Errorf("expected {10 30}, got %+v", got)
		}
	})

	t.Run("every value above the cap collapses to the cap", func(t *testing.T) {
		t.Parallel()

		table := model.NewTable("", []model.Record{
			{Entity: "A", Year: 2000, Emigrants: 20},
			{Entity: "B", Year: 2000, Emigrants: 30},
		})
		got := ColorRange(table, 5)
		if got.Min != 5 || got.Max != 5 {
			t.Errorf("expected {5 5}, got %+v", got)
		}
	})

	t.Run("non-positive cap disables clamping", func(t *testing.T) {
		t.Parallel()

		got := ColorRange(testTable(), 0)
		if got.Max != 20_000_000 {
			t.Errorf("expected max 20000000, got %v", got.Max)
		}
	})

	t.Run("empty table yields zero range", func(t *testing.T) {
		t.Parallel()

		got := ColorRange(model.NewTable("", nil), ColorScaleCap)
		if got != (model.ColorRange{}) {
			t.Errorf("expected zero range, got %+v", got)
		}
	})

	t.Run("max is within bounds for any table", func(t *testing.T) {
		t.Parallel()

		for _, limit := range []float64{1, 150, ColorScaleCap, 1e9} {
			got := ColorRange(testTable(), limit)
			if got.Max > limit {
				t.Errorf("limit %v: max %v exceeds cap", limit, got.Max)
			}
			if got.Max < got.Min {
				t.Errorf("limit %v: max %v below min %v", limit, got.Max, got.Min)
			}
		}
	})
}

func TestYearlyTotals(t *testing.T) {
	t.Parallel()

	t.Run("sums per year in ascending order", func(t *testing.T) {
		t.Parallel()

		table := testTable()
		got := YearlyTotals(table)

		if got.Name != NameYearlyTotals {
			t.Errorf("expected name %q, got %q", NameYearlyTotals, got.Name)
		}
		want := []model.Row{
			{Year: 1990, Emigrants: 100},
			{Year: 1991, Emigrants: 200},
			{Year: 2020, Emigrants: 35_000_000},
		}
		if !reflect.DeepEqual(got.Rows, want) {
			t.Errorf("expected %+v, got %+v", want, got.Rows)
		}
		if got.Total() != table.Total() {
			t.Errorf("expected total %v, got %v", table.Total(), got.Total())
		}
	})

	t.Run("unsorted input with fractional counts", func(t *testing.T) {
		t.Parallel()

		table := model.NewTable("", []model.Record{
			{Entity: "Peru", Year: 2005, Emigrants: 0.25},
			{Entity: "Chile", Year: 1995, Emigrants: 1_234_567.5},
			{Entity: "Peru", Year: 1995, Emigrants: 0.5},
			{Entity: "Chile", Year: 2005, Emigrants: 10},
		})
		want := []model.Row{
			{Year: 1995, Emigrants: 1_234_568},
			{Year: 2005, Emigrants: 10.25},
		}
		if got := YearlyTotals(table); !reflect.DeepEqual(got.Rows, want) {
			t.Errorf("expected %+v, got %+v", want, got.Rows)
		}
		if got := Years(table); !reflect.DeepEqual(got, []int{1995, 2005}) {
			t.Errorf("expected [1995 2005], got %v", got)
		}
	})

	t.Run("empty table yields no rows", func(t *testing.T) {
		t.Parallel()

		got := YearlyTotals(model.NewTable("", nil))
		if !got.IsEmpty() {
			t.Errorf("expected no rows, got %+v", got.Rows)
		}
	})
}

func TestTopEntitiesForYear(t *testing.T) {
	t.Parallel()

	t.Run("ranks allowlisted entities of the year", func(t *testing.T) {
		t.Parallel()

		got := TopEntitiesForYear(testTable(), continents, 2020, 3)
		want := []string{"Asia", "Europe", "Africa"}
		if !reflect.DeepEqual(got.Entities(), want) {
			t.Errorf("expected %v, got %v", want, got.Entities())
		}
		for _, r := range got.Rows {
			if r.Year != 2020 {
				t.Errorf("unexpected year %d", r.Year)
			}
		}
	})

	t.Run("ties keep table order", func(t *testing.T) {
		t.Parallel()

		got := TopEntitiesForYear(testTable(), continents, 2020, 10)
		want := []string{"Asia", "Europe", "Africa", "Oceania"}
		if !reflect.DeepEqual(got.Entities(), want) {
			t.Errorf("expected %v, got %v", want, got.Entities())
		}
	})

	t.Run("fewer matches than n is not an error", func(t *testing.T) {
		t.Parallel()

		table := model.NewTable("", []model.Record{{Entity: "Europe", Year: 2020, Emigrants: 1}})
		got := TopEntitiesForYear(table, continents, 2020, 10)
		if got.Len() != 1 || got.Rows[0].Entity != "Europe" {
			t.Errorf("expected a single Europe row, got %+v", got.Rows)
		}
	})

	t.Run("non-positive n yields no rows", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{0, -1} {
			if got := TopEntitiesForYear(testTable(), continents, 2020, n); !got.IsEmpty() {
				t.Errorf("n=%d: expected no rows, got %+v", n, got.Rows)
			}
		}
	})

	t.Run("unknown year yields no rows", func(t *testing.T) {
		t.Parallel()

		if got := TopEntitiesForYear(testTable(), continents, 1800, 5); !got.IsEmpty() {
			t.Errorf("expected no rows, got %+v", got.Rows)
		}
	})

	t.Run("result is sorted and bounded", func(t *testing.T) {
		t.Parallel()

		for n := 1; n <= 6; n++ {
			got := TopEntitiesForYear(testTable(), continents, 2020, n)
			if got.Len() > n {
				t.Errorf("n=%d: got %d rows", n, got.Len())
			}
			for i := 1; i < got.Len(); i++ {
				if got.Rows[i-1].Emigrants < got.Rows[i].Emigrants {
					t.Errorf("n=%d: rows not sorted descending: %+v", n, got.Rows)
				}
			}
		}
	})
}

func TestSeriesForEntity(t *testing.T) {
	t.Parallel()

	t.Run("returns the entity per year", func(t *testing.T) {
		t.Parallel()

		got := SeriesForEntity(testTable(), "Italy")
		want := []model.Row{
			{Entity: "Italy", Year: 1990, Emigrants: 100},
			{Entity: "Italy", Year: 1991, Emigrants: 200},
		}
		if !reflect.DeepEqual(got.Rows, want) {
			t.Errorf("expected %+v, got %+v", want, got.Rows)
		}
		if got.Name != NameEntitySeries {
			t.Errorf("expected name %q, got %q", NameEntitySeries, got.Name)
		}
	})

	t.Run("matching is exact", func(t *testing.T) {
		t.Parallel()

		if got := SeriesForEntity(testTable(), "italy"); !got.IsEmpty() {
			t.Errorf("expected no rows, got %+v", got.Rows)
		}
	})
}

func TestYears(t *testing.T) {
	t.Parallel()

	got := Years(testTable())
	want := []int{1990, 1991, 2020}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := Years(model.NewTable("", nil)); len(got) != 0 {
		t.Errorf("expected no years, got %v", got)
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()

	got := Slice(testTable(), 1991)
	want := []model.Row{{Entity: "Italy", Year: 1991, Emigrants: 200}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("expected %+v, got %+v", want, got.Rows)
	}
	if got.Name != NameYearSlice {
		t.Errorf("expected name %q, got %q", NameYearSlice, got.Name)
	}
}
