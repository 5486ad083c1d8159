package page

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/nao1215/migtrends/internal/model"
)

func testCharts() Charts {
	spec := func(id string, kind model.ChartKind) model.ChartSpec {
		return model.ChartSpec{ID: id, Kind: kind, Options: json.RawMessage(`{"title":{"text":"` + id + `"}}`)}
	}
	return Charts{
		Map:     spec("map", model.ChartKindMap),
		Bar:     spec("bar", model.ChartKindBar),
		Global:  spec("global", model.ChartKindLine),
		Country: spec("country", model.ChartKindLine),
	}
}

// walk calls fn for every node below n in document order.
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// attrValue returns the value of the key attribute of n.
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// text returns the concatenated text children of n.
func text(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("places charts and captions in fixed order", func(t *testing.T) {
		t.Parallel()

		content := DefaultContent()
		p := Compose(content, testCharts())

		if p.Title != content.Title {
			t.Errorf("expected title %q, got %q", content.Title, p.Title)
		}
		children := p.Root.Children
		if len(children) != 6 {
			t.Fatalf("expected 6 top-level nodes, got %d", len(children))
		}
		if children[0].Kind != model.NodeHeading || children[0].Text != content.Title {
			t.Errorf("unexpected heading %+v", children[0])
		}
		if children[1].Class != ClassContainer || children[1].Children[0].Text != content.Intro {
			t.Errorf("unexpected intro container %+v", children[1])
		}

		wantIDs := []string{"map", "bar", "global", "country"}
		wantCaptions := []string{content.MapCaption, content.BarCaption, content.GlobalCaption, content.CountryCaption}
		for i, g := range children[2:] {
			if g.Class != ClassGraphContainer {
				t.Errorf("graph %d: expected class %q, got %q", i, ClassGraphContainer, g.Class)
			}
			if len(g.Children) != 2 {
				t.Fatalf("graph %d: expected chart and caption, got %d nodes", i, len(g.Children))
			}
			if g.Children[0].Chart == nil || g.Children[0].Chart.ID != wantIDs[i] {
				t.Errorf("graph %d: unexpected chart %+v", i, g.Children[0].Chart)
			}
			if g.Children[1].Text != wantCaptions[i] {
				t.Errorf("graph %d: unexpected caption", i)
			}
		}
	})

	t.Run("charts are listed in page order", func(t *testing.T) {
		t.Parallel()

		p := Compose(DefaultContent(), testCharts())
		var ids []string
		for _, c := range p.Charts() {
			ids = append(ids, c.ID)
		}
		if !reflect.DeepEqual(ids, []string{"map", "bar", "global", "country"}) {
			t.Errorf("unexpected chart order %v", ids)
		}
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("renders a parseable document", func(t *testing.T) {
		t.Parallel()

		content := DefaultContent()
		assets := []string{"https://example.com/echarts.min.js", "https://example.com/maps/world.js"}

		var buf bytes.Buffer
		if err := Render(&buf, Compose(content, testCharts()), assets); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(buf.String(), "<!DOCTYPE html>") {
			t.Errorf("expected a doctype, got %q", buf.String()[:20])
		}

		doc, err := html.Parse(&buf)
		if err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}

		var title, heading string
		var srcs, chartIDs []string
		var captions int
		walk(doc, func(n *html.Node) {
			if n.Type != html.ElementNode {
				return
			}
			switch n.Data {
			case "title":
				title = text(n)
			case "h1":
				heading = text(n)
			case "script":
				if src := attrValue(n, "src"); src != "" {
					srcs = append(srcs, src)
				}
			case "div":
				if attrValue(n, "class") == "chart" {
					chartIDs = append(chartIDs, attrValue(n, "id"))
				}
			case "p":
				captions++
			}
		})

		if title != content.Title || heading != content.Title {
			t.Errorf("expected title %q, got title %q and heading %q", content.Title, title, heading)
		}
		if !reflect.DeepEqual(srcs, assets) {
			t.Errorf("expected scripts %v, got %v", assets, srcs)
		}
		if !reflect.DeepEqual(chartIDs, []string{"map", "bar", "global", "country"}) {
			t.Errorf("unexpected chart order %v", chartIDs)
		}
		if captions != 5 {
			t.Errorf("expected intro and 4 captions, got %d paragraphs", captions)
		}
	})

	t.Run("chart options cannot close the script element", func(t *testing.T) {
		t.Parallel()

		charts := testCharts()
		charts.Bar.Options = json.RawMessage(`{"title":{"text":"</script><b>x</b>"}}`)

		out, err := RenderBytes(Compose(DefaultContent(), charts), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bytes.Contains(out, []byte("</script><b>")) {
			t.Error("chart options were not escaped")
		}
		if !bytes.Contains(out, []byte(`\u003c/script\u003e`)) {
			t.Error("expected escaped options in the output")
		}
	})

	t.Run("chart without id is an error", func(t *testing.T) {
		t.Parallel()

		charts := testCharts()
		charts.Global.ID = ""
		if _, err := RenderBytes(Compose(DefaultContent(), charts), nil); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("nil page is an error", func(t *testing.T) {
		t.Parallel()

		if err := Render(&bytes.Buffer{}, nil, nil); !errors.Is(err, ErrEmptyPage) {
			t.Errorf("expected ErrEmptyPage, got %v", err)
		}
	})
}
