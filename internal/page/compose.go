package page

import "github.com/nao1215/migtrends/internal/model"

// CSS classes of the layout containers.
const (
	ClassContainer      = "container"
	ClassGraphContainer = "graph-container"
)

// Charts holds the four dashboard charts.
type Charts struct {
	Map     model.ChartSpec
	Bar     model.ChartSpec
	Global  model.ChartSpec
	Country model.ChartSpec
}

// Compose builds the dashboard layout: heading, intro paragraph, then one
// (chart, caption) container each for the map, bar, global line and
// country line charts, in that order.
func Compose(content Content, charts Charts) *model.Page {
	root := &model.Node{Kind: model.NodeContainer}
	root.Children = []*model.Node{
		{Kind: model.NodeHeading, Text: content.Title},
		{
			Kind:     model.NodeContainer,
			Class:    ClassContainer,
			Children: []*model.Node{{Kind: model.NodeParagraph, Text: content.Intro}},
		},
		graph(charts.Map, content.MapCaption),
		graph(charts.Bar, content.BarCaption),
		graph(charts.Global, content.GlobalCaption),
		graph(charts.Country, content.CountryCaption),
	}

	return &model.Page{Title: content.Title, Root: root}
}

// graph wraps a chart and its caption in a graph container.
func graph(spec model.ChartSpec, caption string) *model.Node {
	return &model.Node{
		Kind:  model.NodeContainer,
		Class: ClassGraphContainer,
		Children: []*model.Node{
			{Kind: model.NodeChart, Chart: &spec},
			{Kind: model.NodeParagraph, Text: caption},
		},
	}
}
