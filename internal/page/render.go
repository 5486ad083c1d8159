package page

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nao1215/migtrends/internal/model"
)

// ErrEmptyPage is returned when a page has no layout.
var ErrEmptyPage = errors.New("page has no layout")

// stylesheet is embedded in the document head.
const stylesheet = `body{font-family:"Times New Roman",Times,serif;margin:0 auto;max-width:1200px;padding:0 16px;color:#222;background:#fff}
h1{text-align:center;margin:32px 0 16px}
.container p,.graph-container p{line-height:1.6;text-align:justify}
.graph-container{margin:32px 0}
.chart{width:100%;height:500px}`

// Render writes p as a complete HTML5 document. assets are script URLs
// loaded in the head, before any chart script runs.
func Render(w io.Writer, p *model.Page, assets []string) error {
	if p == nil || p.Root == nil {
		return ErrEmptyPage
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, attr("lang", "en"))
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(element(atom.Meta,
		attr("name", "viewport"),
		attr("content", "width=device-width, initial-scale=1"),
	))
	head.AppendChild(withText(element(atom.Title), p.Title))
	head.AppendChild(withText(element(atom.Style), stylesheet))
	for _, src := range assets {
		head.AppendChild(element(atom.Script, attr("src", src)))
	}
	root.AppendChild(head)

	body := element(atom.Body)
	n, err := convert(p.Root)
	if err != nil {
		return err
	}
	body.AppendChild(n)
	root.AppendChild(body)

	return html.Render(w, doc)
}

// RenderBytes renders p into memory.
func RenderBytes(p *model.Page, assets []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, p, assets); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// convert turns a layout node into an HTML node tree.
func convert(n *model.Node) (*html.Node, error) {
	switch n.Kind {
	case model.NodeHeading:
		return withText(element(atom.H1), n.Text), nil
	case model.NodeParagraph:
		return withText(element(atom.P), n.Text), nil
	case model.NodeChart:
		return chartNode(n.Chart)
	case model.NodeContainer:
		div := element(atom.Div)
		if n.Class != "" {
			div.Attr = append(div.Attr, attr("class", n.Class))
		}
		for _, c := range n.Children {
			child, err := convert(c)
			if err != nil {
				return nil, err
			}
			div.AppendChild(child)
		}
		return div, nil
	default:
		return nil, fmt.Errorf("failed to render page: unknown node kind %v", n.Kind)
	}
}

// chartNode renders a chart placeholder and the script that fills it.
func chartNode(spec *model.ChartSpec) (*html.Node, error) {
	if spec == nil || spec.ID == "" {
		return nil, errors.New("failed to render page: chart without id")
	}

	id, err := json.Marshal(spec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart id: %w", err)
	}

	options := spec.Options
	if len(options) == 0 {
		options = json.RawMessage("{}")
	}
	var escaped bytes.Buffer
	json.HTMLEscape(&escaped, options)

	script := fmt.Sprintf(
		`(function(){var c=echarts.init(document.getElementById(%s),null,{renderer:"canvas"});c.setOption(%s);window.addEventListener("resize",function(){c.resize();});})();`,
		id, escaped.String(),
	)

	wrapper := element(atom.Div, attr("class", "chart-wrapper"), attr("data-kind", spec.Kind.String()))
	wrapper.AppendChild(element(atom.Div, attr("id", spec.ID), attr("class", "chart")))
	wrapper.AppendChild(withText(element(atom.Script), script))
	return wrapper, nil
}

// element creates an element node.
func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// attr creates an attribute.
func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// withText appends a text child to n and returns n.
func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
