package chart

// defaultAliases maps dataset entity names to the region names of the
// ECharts world map where the two differ.
var defaultAliases = map[string]string{
	"Bosnia and Herzegovina":       "Bosnia and Herz.",
	"Central African Republic":     "Central African Rep.",
	"Cote d'Ivoire":                "Côte d'Ivoire",
	"Czechia":                      "Czech Rep.",
	"Democratic Republic of Congo": "Dem. Rep. Congo",
	"Dominican Republic":           "Dominican Rep.",
	"East Timor":                   "Timor-Leste",
	"Equatorial Guinea":            "Eq. Guinea",
	"Eswatini":                     "Swaziland",
	"Falkland Islands":             "Falkland Is.",
	"Laos":                         "Lao PDR",
	"North Korea":                  "Dem. Rep. Korea",
	"North Macedonia":              "Macedonia",
	"Solomon Islands":              "Solomon Is.",
	"South Korea":                  "Korea",
	"South Sudan":                  "S. Sudan",
	"Western Sahara":               "W. Sahara",
}

// Resolver maps entity names to map region names.
// The zero value is not usable; use NewResolver.
type Resolver struct {
	aliases map[string]string
}

// NewResolver returns a Resolver with the built-in aliases, extended or
// overridden by overrides.
func NewResolver(overrides map[string]string) *Resolver {
	aliases := make(map[string]string, len(defaultAliases)+len(overrides))
	for k, v := range defaultAliases {
		aliases[k] = v
	}
	for k, v := range overrides {
		aliases[k] = v
	}
	return &Resolver{aliases: aliases}
}

// Resolve returns the map region name for entity. Names without an alias
// are returned unchanged; the map ignores names it does not know.
func (r *Resolver) Resolve(entity string) string {
	if alias, ok := r.aliases[entity]; ok {
		return alias
	}
	return entity
}
