// Package dataset loads the emigration dataset into a model.Table.
//
// Two sources are supported:
//   - CSV files with a header row containing "Entity", "Year" and
//     "Total number of emigrants" (other columns are ignored)
//   - SQLite files written by "migtrends convert"
//
// Load failures are returned to the caller unchanged in kind: a missing
// file yields ErrNotFound, malformed content yields a *ParseError.
package dataset
