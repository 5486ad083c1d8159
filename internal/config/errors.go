package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoDataPath is returned when no dataset path is configured.
	ErrNoDataPath = errors.New("no dataset specified: use --data or set data in the config file")

	// ErrInvalidAddr is returned when the listen address is not "host:port".
	ErrInvalidAddr = errors.New("invalid listen address: must be host:port")

	// ErrNoFocusEntity is returned when the single-country chart has no entity.
	ErrNoFocusEntity = errors.New("no focus entity specified")

	// ErrInvalidTopN is returned when the bar chart size is not positive.
	ErrInvalidTopN = errors.New("invalid top n: must be positive")

	// ErrNoRegions is returned when the bar chart allowlist is empty.
	ErrNoRegions = errors.New("no regions specified for the ranking chart")

	// ErrInvalidColorCap is returned when the color scale cap is negative.
	ErrInvalidColorCap = errors.New("invalid color cap: must be non-negative")

	// ErrInvalidConcurrency is returned when the chart build concurrency is negative.
	ErrInvalidConcurrency = errors.New("invalid build concurrency: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
