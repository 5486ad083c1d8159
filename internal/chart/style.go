package chart

// Default presentation settings, matching the published dashboard.
const (
	// DefaultTitleFont is the font family of chart titles.
	DefaultTitleFont = "Times"

	// DefaultTitleSize is the font size of chart titles in pixels.
	DefaultTitleSize = 20

	// DefaultAssetsHost serves echarts.min.js and the world map script.
	DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

	// WorldMap is the ECharts map type used by the choropleth.
	WorldMap = "world"
)

// PlasmaPalette is the Plasma sequential color scale, low to high.
var PlasmaPalette = []string{
	"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
	"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921",
}

// Style holds the static parameters of one chart.
type Style struct {
	// ID is the DOM id of the chart container.
	ID string

	// Title is the chart title.
	Title string

	// TitleFont and TitleSize style the title. Zero values use the defaults.
	TitleFont string
	TitleSize int

	// XAxisName and YAxisName label the axes of bar and line charts.
	XAxisName string
	YAxisName string

	// SeriesName names the single data series.
	SeriesName string

	// Palette is the color scale of the map, low to high.
	Palette []string

	// AssetsHost is where the ECharts scripts are fetched from.
	AssetsHost string
}

// withDefaults returns a copy of s with empty fields filled in.
func (s Style) withDefaults() Style {
	if s.TitleFont == "" {
		s.TitleFont = DefaultTitleFont
	}
	if s.TitleSize <= 0 {
		s.TitleSize = DefaultTitleSize
	}
	if s.SeriesName == "" {
		s.SeriesName = "Total number of emigrants"
	}
	if len(s.Palette) == 0 {
		s.Palette = PlasmaPalette
	}
	if s.AssetsHost == "" {
		s.AssetsHost = DefaultAssetsHost
	}
	return s
}

// Assets returns the script URLs a page needs to render charts of kind
// map (withMap) or any other kind.
func Assets(host string, withMap bool) []string {
	if host == "" {
		host = DefaultAssetsHost
	}
	assets := []string{host + "echarts.min.js"}
	if withMap {
		assets = append(assets, host+"maps/"+WorldMap+".js")
	}
	return assets
}
