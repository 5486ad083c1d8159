package config

import (
	"net"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values. Together they reproduce the published
// dashboard.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "migtrends"

	// DefaultDataPath is the dataset location relative to the working directory.
	DefaultDataPath = "data/total-number-of-emigrants.csv"

	// DefaultAddr is the listen address of the dashboard server.
	DefaultAddr = "127.0.0.1:8050"

	// DefaultFocusEntity is the entity of the single-country chart.
	DefaultFocusEntity = "Italy"

	// DefaultTopYear is the year of the ranking chart.
	DefaultTopYear = 2020

	// DefaultTopN is the number of bars in the ranking chart.
	DefaultTopN = 10

	// DefaultColorCap is the upper bound of the map color scale.
	DefaultColorCap = 10_500_000

	// DefaultBuildConcurrency is the number of charts built at once.
	// Zero builds all charts at once.
	DefaultBuildConcurrency = 0

	// DefaultShutdownTimeout bounds graceful server shutdown.
	DefaultShutdownTimeout = 5 * time.Second
)

// DefaultRegions returns the continents ranked by the bar chart.
func DefaultRegions() []string {
	return []string{
		"Europe",
		"Asia",
		"Africa",
		"Australia and New Zealand",
		"Northern America",
		"South America",
	}
}

// Config holds all configuration options for migtrends.
// It is populated from defaults, the config file and CLI flags and passed
// down explicitly; no package keeps global configuration state.
type Config struct {
	// DataPath is the dataset file (CSV, or SQLite written by "convert").
	DataPath string

	// Addr is the "host:port" the dashboard server listens on.
	Addr string

	// FocusEntity is the entity plotted by the single-country chart.
	FocusEntity string

	// TopYear is the year ranked by the bar chart.
	TopYear int

	// TopN is the maximum number of bars in the ranking chart.
	TopN int

	// Regions is the allowlist of entities ranked by the bar chart.
	Regions []string

	// ColorCap clamps the maximum of the map color scale. 0 disables clamping.
	ColorCap float64

	// AssetsHost is the base URL of the ECharts scripts.
	// Empty uses the go-echarts asset host.
	AssetsHost string

	// Aliases maps dataset entity names to world map region names, on top
	// of the built-in aliases.
	Aliases map[string]string

	// Text overrides the dashboard's static text. Empty fields keep the
	// published wording.
	Text Text

	// BuildConcurrency limits how many charts are built at once. 0 = all.
	BuildConcurrency int

	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout time.Duration

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the configuration file given with --config.
	ConfigFilePath string

	// JSONReport selects JSON output for "report". Mutually exclusive with
	// MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output for "report".
	MarkdownReport bool

	// ReportFile is the output file of "report". Empty writes to stdout.
	ReportFile string

	// ReportEcho also prints the text summary to stdout when ReportFile
	// is set.
	ReportEcho bool

	// ReportShowEmpty keeps sections without rows in text reports.
	ReportShowEmpty bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DataPath:         DefaultDataPath,
		Addr:             DefaultAddr,
		FocusEntity:      DefaultFocusEntity,
		TopYear:          DefaultTopYear,
		TopN:             DefaultTopN,
		Regions:          DefaultRegions(),
		ColorCap:         DefaultColorCap,
		BuildConcurrency: DefaultBuildConcurrency,
		ShutdownTimeout:  DefaultShutdownTimeout,
		Aliases:          map[string]string{},
	}
}

// Apply merges the non-empty settings of f into c.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Data != "" {
		c.DataPath = f.Data
	}
	if f.Addr != "" {
		c.Addr = f.Addr
	}

	d := f.Dashboard
	if d.FocusEntity != "" {
		c.FocusEntity = d.FocusEntity
	}
	if d.TopYear != 0 {
		c.TopYear = d.TopYear
	}
	if d.TopN != 0 {
		c.TopN = d.TopN
	}
	if len(d.Regions) > 0 {
		c.Regions = append([]string(nil), d.Regions...)
	}
	if d.ColorCap != nil {
		c.ColorCap = *d.ColorCap
	}
	if d.AssetsHost != "" {
		c.AssetsHost = d.AssetsHost
	}

	if len(f.Aliases) > 0 {
		if c.Aliases == nil {
			c.Aliases = make(map[string]string, len(f.Aliases))
		}
		for k, v := range f.Aliases {
			c.Aliases[k] = v
		}
	}

	c.Text = c.Text.merge(f.Text)
}

// XDGDataDir returns the XDG data directory for migtrends.
// On Linux: ~/.local/share/migtrends
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for migtrends.
// On Linux: ~/.config/migtrends
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return ErrNoDataPath
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return ErrInvalidAddr
	}
	if c.FocusEntity == "" {
		return ErrNoFocusEntity
	}
	if c.TopN <= 0 {
		return ErrInvalidTopN
	}
	if len(c.Regions) == 0 {
		return ErrNoRegions
	}
	if c.ColorCap < 0 {
		return ErrInvalidColorCap
	}
	if c.BuildConcurrency < 0 {
		return ErrInvalidConcurrency
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
