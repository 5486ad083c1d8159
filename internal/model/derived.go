package model

// Row is one row of a DerivedTable.
// Entity is empty when the table is grouped by year only.
type Row struct {
	Entity    string  `json:"entity,omitempty"`
	Year      int     `json:"year"`
	Emigrants float64 `json:"emigrants"`
}

// DerivedTable is the result of filtering and/or aggregating a Table.
// An empty DerivedTable is valid and renders as a chart without data points.
type DerivedTable struct {
	// Name identifies the table in reports and logs (e.g. "yearly_totals").
	Name string `json:"name"`

	// Rows holds the computed rows in their final order.
	Rows []Row `json:"rows"`
}

// Len returns the number of rows.
func (d DerivedTable) Len() int {
	return len(d.Rows)
}

// IsEmpty reports whether the table has no rows.
func (d DerivedTable) IsEmpty() bool {
	return len(d.Rows) == 0
}

// Total returns the sum of Emigrants over all rows.
func (d DerivedTable) Total() float64 {
	var total float64
	for _, r := range d.Rows {
		total += r.Emigrants
	}
	return total
}

// Years returns the Year column in row order.
func (d DerivedTable) Years() []int {
	years := make([]int, len(d.Rows))
	for i, r := range d.Rows {
		years[i] = r.Year
	}
	return years
}

// Entities returns the Entity column in row order.
func (d DerivedTable) Entities() []string {
	entities := make([]string, len(d.Rows))
	for i, r := range d.Rows {
		entities[i] = r.Entity
	}
	return entities
}

// ColorRange is the value domain of the choropleth color scale.
type ColorRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
