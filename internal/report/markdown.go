package report

import (
	"io"
	"math"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/migtrends/internal/model"
)

// MarkdownWriter outputs summaries in Markdown format for documentation
// and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeYearlyTotals(md, summary)
	w.writeRanking(md, summary)
	w.writeFocus(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and dataset properties.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, s *model.Summary) {
	md.H1("Emigration Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + s.Source + "`"},
			{"Generated", s.GeneratedAt.Format(timestampLayout)},
			{"Records", formatCount(float64(s.Records))},
			{"Emigrants", formatCount(s.YearlyTotals.Total())},
			{"Color range", formatCount(s.ColorRange.Min) + " - " + formatCount(s.ColorRange.Max)},
		},
	})
	md.PlainText("")
}

// writeYearlyTotals writes the global emigration table.
func (w *MarkdownWriter) writeYearlyTotals(md *markdown.Markdown, s *model.Summary) {
	md.H2(sectionTitle(s.YearlyTotals.Name))
	md.PlainText("")

	if s.YearlyTotals.IsEmpty() {
		md.Warningf("The dataset %s has no records.", s.Source)
		md.PlainText("")
		return
	}
	writeYearTable(md, s.YearlyTotals)
}

// writeRanking writes the ranking table and its pie chart.
func (w *MarkdownWriter) writeRanking(md *markdown.Markdown, s *model.Summary) {
	md.H2(sectionTitle(s.TopEntities.Name) + " in " + strconv.Itoa(s.TopYear))
	md.PlainText("")

	if s.TopEntities.IsEmpty() {
		md.Importantf("No allowlisted region has data for %d.", s.TopYear)
		md.PlainText("")
		return
	}

	rows := make([][]string, len(s.TopEntities.Rows))
	for i, r := range s.TopEntities.Rows {
		rows[i] = []string{strconv.Itoa(i + 1), r.Entity, formatCount(r.Emigrants)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Entity", "Emigrants"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md, s)
}

// writePieChart writes a mermaid pie chart of the ranking.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Emigrants by Region in "+strconv.Itoa(s.TopYear)),
		piechart.WithShowData(true),
	)

	for _, r := range s.TopEntities.Rows {
		if r.Emigrants <= 0 {
			continue
		}
		chart.LabelAndIntValue(r.Entity, uint64(math.Round(r.Emigrants)))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFocus writes the focus entity's series.
func (w *MarkdownWriter) writeFocus(md *markdown.Markdown, s *model.Summary) {
	md.H2(sectionTitle(s.FocusSeries.Name) + ": " + s.FocusEntity)
	md.PlainText("")

	if s.FocusSeries.IsEmpty() {
		md.Cautionf("%s does not appear in the dataset.", s.FocusEntity)
		md.PlainText("")
		return
	}
	writeYearTable(md, s.FocusSeries)

	first := s.FocusSeries.Rows[0]
	last := s.FocusSeries.Rows[len(s.FocusSeries.Rows)-1]
	md.Note(s.FocusEntity + ": " + formatCount(first.Emigrants) + " emigrants in " +
		strconv.Itoa(first.Year) + ", " + formatCount(last.Emigrants) + " in " + strconv.Itoa(last.Year) + ".")
	md.PlainText("")
}

// writeYearTable writes a two-column year table.
func writeYearTable(md *markdown.Markdown, d model.DerivedTable) {
	rows := make([][]string, len(d.Rows))
	for i, r := range d.Rows {
		rows[i] = []string{strconv.Itoa(r.Year), formatCount(r.Emigrants)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Year", "Emigrants"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by migtrends*")
}
