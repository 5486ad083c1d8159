// Package model defines the core data structures used throughout migtrends.
//
// This package contains the following main types:
//   - Record and Table: the loaded emigration dataset
//   - DerivedTable: filtered or aggregated views computed from a Table
//   - ChartSpec: a declarative ECharts option document for one chart
//   - Page: the static layout tree served to browsers
//   - Summary: the derived tables bundled for report output
//
// Every value in this package is built once at startup and never mutated
// afterwards, so it can be shared freely between goroutines.
package model
