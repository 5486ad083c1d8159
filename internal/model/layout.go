package model

// NodeKind identifies the type of a layout node.
type NodeKind int

const (
	// NodeHeading is a top-level page heading.
	NodeHeading NodeKind = iota
	// NodeParagraph is a block of text.
	NodeParagraph
	// NodeContainer groups child nodes.
	NodeContainer
	// NodeChart is a placeholder that the browser fills with a chart.
	NodeChart
)

// String returns a readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeHeading:
		return "heading"
	case NodeParagraph:
		return "paragraph"
	case NodeContainer:
		return "container"
	case NodeChart:
		return "chart"
	default:
		return "unknown"
	}
}

// Node is one element of the page layout tree.
type Node struct {
	Kind     NodeKind
	Text     string
	Class    string
	Chart    *ChartSpec
	Children []*Node
}

// Page is the static layout served for the process lifetime.
type Page struct {
	// Title is the document title (the <title> element).
	Title string

	// Root is the top-level container holding every other node.
	Root *Node
}

// Charts returns the chart specs in document order.
func (p *Page) Charts() []*ChartSpec {
	if p == nil || p.Root == nil {
		return nil
	}
	var charts []*ChartSpec
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind == NodeChart && n.Chart != nil {
			charts = append(charts, n.Chart)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(p.Root)
	return charts
}
