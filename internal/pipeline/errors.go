package pipeline

import "errors"

var (
	// ErrNoConfig is returned when a Dashboard has no configuration.
	ErrNoConfig = errors.New("dashboard has no configuration")

	// ErrNoTable is returned by steps that run before the dataset is loaded.
	ErrNoTable = errors.New("dataset is not loaded")

	// ErrNoCharts is returned by ComposeStep when the charts were not built.
	ErrNoCharts = errors.New("charts are not built")
)
