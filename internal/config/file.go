package config

// File represents the structure of the .migtrends configuration file.
//
//	data: data/total-number-of-emigrants.csv
//	addr: 127.0.0.1:8050
//	dashboard:
//	  focusEntity: Italy
//	  topYear: 2020
//	  topN: 10
//	aliases:
//	  "Democratic Republic of Congo": "Dem. Rep. Congo"
type File struct {
	// Data is the dataset path.
	Data string `yaml:"data,omitempty"`

	// Addr is the listen address of the server.
	Addr string `yaml:"addr,omitempty"`

	// Dashboard holds the chart parameters.
	Dashboard Dashboard `yaml:"dashboard,omitempty"`

	// Aliases maps dataset entity names to world map region names.
	Aliases map[string]string `yaml:"aliases,omitempty"`

	// Text overrides the static text of the page.
	Text Text `yaml:"text,omitempty"`
}

// Dashboard holds chart parameters of the configuration file.
type Dashboard struct {
	FocusEntity string   `yaml:"focusEntity,omitempty"`
	TopYear     int      `yaml:"topYear,omitempty"`
	TopN        int      `yaml:"topN,omitempty"`
	Regions     []string `yaml:"regions,omitempty"`

	// ColorCap is a pointer so that an explicit 0 (no clamping) can be
	// told apart from an absent key.
	ColorCap *float64 `yaml:"colorCap,omitempty"`

	AssetsHost string `yaml:"assetsHost,omitempty"`
}

// Text is the static text of the page. Empty fields keep the defaults.
type Text struct {
	Title          string `yaml:"title,omitempty"`
	Intro          string `yaml:"intro,omitempty"`
	MapCaption     string `yaml:"mapCaption,omitempty"`
	BarCaption     string `yaml:"barCaption,omitempty"`
	GlobalCaption  string `yaml:"globalCaption,omitempty"`
	CountryCaption string `yaml:"countryCaption,omitempty"`
}

// merge returns t with the non-empty fields of o applied.
func (t Text) merge(o Text) Text {
	if o.Title != "" {
		t.Title = o.Title
	}
	if o.Intro != "" {
		t.Intro = o.Intro
	}
	if o.MapCaption != "" {
		t.MapCaption = o.MapCaption
	}
	if o.BarCaption != "" {
		t.BarCaption = o.BarCaption
	}
	if o.GlobalCaption != "" {
		t.GlobalCaption = o.GlobalCaption
	}
	if o.CountryCaption != "" {
		t.CountryCaption = o.CountryCaption
	}
	return t
}
