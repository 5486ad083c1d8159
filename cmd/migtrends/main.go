// Package main provides the entry point for the migtrends CLI.
//
// migtrends serves a single-page dashboard of global emigration statistics
// (1990-2020) built from a CSV dataset.
//
// Usage:
//
//	migtrends serve --data data/total-number-of-emigrants.csv
//	migtrends report --markdown -o summary.md
//
// See --help for all available options.
package main

// main is the entry point for migtrends.
func main() {
	Execute()
}
