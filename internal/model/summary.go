package model

import "time"

// Summary bundles the derived data of one dashboard build.
// It is what the report writers print.
type Summary struct {
	// Source is where the dataset was loaded from.
	Source string `json:"source"`

	// GeneratedAt is when the summary was computed.
	GeneratedAt time.Time `json:"generated_at"`

	// Records is the number of records in the base table.
	Records int `json:"records"`

	// ColorRange is the clamped color domain of the map.
	ColorRange ColorRange `json:"color_range"`

	// YearlyTotals is the global emigration per year.
	YearlyTotals DerivedTable `json:"yearly_totals"`

	// TopEntities is the ranking of allowlisted regions for TopYear.
	TopEntities DerivedTable `json:"top_entities"`

	// TopYear is the year TopEntities was computed for.
	TopYear int `json:"top_year"`

	// FocusEntity is the entity of FocusSeries.
	FocusEntity string `json:"focus_entity"`

	// FocusSeries is the per-year emigration of FocusEntity.
	FocusSeries DerivedTable `json:"focus_series"`
}
