// Package pipeline builds the dashboard at process start.
//
// A Dashboard value flows through an ordered list of Steps:
//
//	LoadStep      dataset file -> model.Table
//	AggregateStep Table -> color range and derived tables
//	ChartStep     derived data -> four chart specs (built concurrently)
//	ComposeStep   chart specs -> page tree and rendered HTML
//
// Build wires the standard steps for a config.Config. Every step runs to
// completion before the next one starts, and the first failure aborts the
// build: the server never starts with a partial page.
package pipeline
