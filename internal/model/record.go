package model

// Record is one row of the emigration dataset: the number of emigrants
// recorded for an entity (country, continent or region) in a given year.
type Record struct {
	// Entity is the country or region name as written in the dataset.
	Entity string `json:"entity"`

	// Year is the reference year of the count.
	Year int `json:"year"`

	// Emigrants is the total number of emigrants. Never negative.
	Emigrants float64 `json:"emigrants"`
}

// Table is the loaded dataset. Records keep their source order.
//
// The zero value is an empty table. A Table is never modified after it is
// returned by NewTable; accessors hand out copies or single values only.
type Table struct {
	source  string
	records []Record
}

// NewTable creates a Table over a private copy of records.
// source describes where the records came from (file path, "memory", ...).
func NewTable(source string, records []Record) *Table {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Table{source: source, records: cp}
}

// Source returns the origin of the records.
func (t *Table) Source() string {
	if t == nil {
		return ""
	}
	return t.source
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns the i-th record.
func (t *Table) At(i int) Record {
	return t.records[i]
}

// Records returns a copy of all records in source order.
func (t *Table) Records() []Record {
	if t == nil {
		return nil
	}
	cp := make([]Record, len(t.records))
	copy(cp, t.records)
	return cp
}

// Each calls fn for every record in source order.
func (t *Table) Each(fn func(Record)) {
	if t == nil {
		return
	}
	for _, r := range t.records {
		fn(r)
	}
}

// Total returns the sum of Emigrants over all records.
func (t *Table) Total() float64 {
	var total float64
	t.Each(func(r Record) {
		total += r.Emigrants
	})
	return total
}
