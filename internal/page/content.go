package page

// Content is the static text of the dashboard.
type Content struct {
	// Title is both the document title and the page heading.
	Title string

	// Intro is the paragraph below the heading.
	Intro string

	// Captions of the four charts, in page order.
	MapCaption     string
	BarCaption     string
	GlobalCaption  string
	CountryCaption string
}

// DefaultContent returns the text of the published dashboard.
func DefaultContent() Content {
	return Content{
		Title: "Global Migration Trends",
		Intro: "Emigration is defined as the act of leaving one's own country to settle permanently in another; moving abroad. " +
			"This phenomenon has been a central part of human history, driven by factors such as economic opportunities, " +
			"political instability, environmental changes, and the search for better living conditions. Over time, migration " +
			"patterns have shaped cultures, economies, and demographics worldwide, creating complex narratives of growth, " +
			"challenge, and transformation. This dashboard provides a data-driven exploration of global emigration trends, " +
			"shedding light on where people are moving and the forces that influence these migrations.",
		MapCaption: "The choropleth map illustrates the total number of emigrants per country from 1990 to 2020, with colors " +
			"representing the number of emigrants. Darker shades indicate countries with higher emigration, while lighter " +
			"shades show those with lower emigration levels. The map is animated by year, allowing you to explore how global " +
			"emigration patterns evolved over the past three decades. It offers a visual understanding of where most people " +
			"have been moving from, reflecting the geopolitical and socio-economic factors influencing these trends.",
		BarCaption: "The bar chart ranks continents based on the number of emigrants in 2020. It provides a snapshot of which " +
			"continents experienced the most emigration during that year. This visualization offers a comparative view of " +
			"migration across continents, making it easier to identify regions where emigration was particularly high. The " +
			"chart sheds light on the global distribution of emigrants and helps contextualize the broader migration trends " +
			"of the year.",
		GlobalCaption: "This line chart displays the total number of emigrants worldwide each year. The chart aggregates data " +
			"across countries to show how global emigration has fluctuated over time. It highlights key trends, such as " +
			"periods of sharp increase or decline in migration, which may correlate with global events like economic crises " +
			"or political upheavals. This chart helps contextualize the overall movement of people across borders, offering " +
			"a clear view of global migration patterns.",
		CountryCaption: "This line chart tracks the number of emigrants from Italy over time, highlighting how migration trends " +
			"have shifted for this particular country. By focusing on Italy, the chart allows for an in-depth look at the " +
			"country’s emigration history and the specific events or factors influencing these changes. You can observe " +
			"periods of higher or lower emigration and consider the social, economic, and political forces at play within " +
			"Italy during these times.",
	}
}
