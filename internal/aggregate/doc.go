// Package aggregate derives the dashboard's secondary tables from the
// loaded dataset.
//
// Every function is pure: it reads the base table and returns a new
// model.DerivedTable. A filter that matches nothing yields an empty table,
// never an error.
package aggregate
