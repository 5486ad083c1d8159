package model

import "testing"

func TestNodeKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind NodeKind
		want string
	}{
		{NodeHeading, "heading"},
		{NodeParagraph, "paragraph"},
		{NodeContainer, "container"},
		{NodeChart, "chart"},
		{NodeKind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPageCharts(t *testing.T) {
	t.Parallel()

	t.Run("returns charts in document order", func(t *testing.T) {
		t.Parallel()

		a := &ChartSpec{ID: "a", Kind: ChartKindMap}
		b := &ChartSpec{ID: "b", Kind: ChartKindBar}
		c := &ChartSpec{ID: "c", Kind: ChartKindLine}
		p := &Page{Root: &Node{Kind: NodeContainer, Children: []*Node{
			{Kind: NodeHeading, Text: "title"},
			{Kind: NodeContainer, Children: []*Node{{Kind: NodeChart, Chart: a}}},
			{Kind: NodeContainer, Children: []*Node{
				{Kind: NodeChart, Chart: b},
				{Kind: NodeContainer, Children: []*Node{{Kind: NodeChart, Chart: c}}},
			}},
		}}}

		got := p.Charts()
		if len(got) != 3 {
			t.Fatalf("expected 3 charts, got %d", len(got))
		}
		for i, want := range []string{"a", "b", "c"} {
			if got[i].ID != want {
				t.Errorf("chart %d: expected %q, got %q", i, want, got[i].ID)
			}
		}
	})

	t.Run("nil page has no charts", func(t *testing.T) {
		t.Parallel()

		var p *Page
		if p.Charts() != nil {
			t.Error("expected nil")
		}
	})
}

func TestChartSpec(t *testing.T) {
	t.Parallel()

	if !(ChartSpec{}).IsEmpty() {
		t.Error("expected spec without points to be empty")
	}
	if (ChartSpec{Points: 1}).IsEmpty() {
		t.Error("expected spec with points not to be empty")
	}
	if ChartKindMap.String() != "map" {
		t.Errorf("unexpected kind string %q", ChartKindMap.String())
	}
}
