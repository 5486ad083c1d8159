// Package database stores an emigration dataset in a SQLite file.
//
// "migtrends convert" writes a CSV dataset into a Store once; the dataset
// loader can then read it back through a read-only connection. The file
// holds two tables: emigrants (one row per record, in source order) and
// imports (a single row describing the last import).
//
// The driver is modernc.org/sqlite, a CGO-free implementation.
package database
