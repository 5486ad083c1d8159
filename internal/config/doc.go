// Package config provides configuration structures and utilities for migtrends.
// It defines where the dataset lives, how the dashboard is parameterized
// and where the server listens, merged from defaults, the optional YAML
// configuration file and command line flags (in that order).
package config
