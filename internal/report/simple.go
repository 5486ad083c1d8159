package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/migtrends/internal/model"
)

// ruleWidth is the width of section rules in text reports.
const ruleWidth = 70

// SimpleWriter outputs human-readable text reports for terminal display.
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections without rows are shown.
	showEmpty bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary in human-readable format.
func (w *SimpleWriter) Write(summary *model.Summary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary)
	w.writeYearlyTotals(&sb, summary.YearlyTotals)
	w.writeRanking(&sb, summary)
	w.writeFocus(&sb, summary)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report banner and dataset information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, s *model.Summary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("                       EMIGRATION SUMMARY\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Source:       %s\n", s.Source))
	sb.WriteString(fmt.Sprintf("Generated:    %s\n", s.GeneratedAt.Format(timestampLayout)))
	sb.WriteString(fmt.Sprintf("Records:      %s\n", formatCount(float64(s.Records))))
	sb.WriteString(fmt.Sprintf("Emigrants:    %s\n", formatCount(s.YearlyTotals.Total())))
	sb.WriteString(fmt.Sprintf("Color range:  %s - %s\n", formatCount(s.ColorRange.Min), formatCount(s.ColorRange.Max)))
	sb.WriteString("\n")
}

// writeSection writes a section heading between rules.
func writeSection(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(strings.ToUpper(title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")
}

// writeYearlyTotals writes the global emigration per year.
func (w *SimpleWriter) writeYearlyTotals(sb *strings.Builder, d model.DerivedTable) {
	if d.IsEmpty() && !w.showEmpty {
		return
	}

	writeSection(sb, sectionTitle(d.Name))
	writeYearRows(sb, d)
}

// writeRanking writes the ranked regions of the top year.
func (w *SimpleWriter) writeRanking(sb *strings.Builder, s *model.Summary) {
	d := s.TopEntities
	if d.IsEmpty() && !w.showEmpty {
		return
	}

	writeSection(sb, fmt.Sprintf("%s in %d", sectionTitle(d.Name), s.TopYear))
	if d.IsEmpty() {
		sb.WriteString("  No data\n\n")
		return
	}

	width := 0
	for _, r := range d.Rows {
		width = max(width, len(r.Entity))
	}
	for i, r := range d.Rows {
		sb.WriteString(fmt.Sprintf("  %2d. %-*s %15s\n", i+1, width, r.Entity, formatCount(r.Emigrants)))
	}
	sb.WriteString(fmt.Sprintf("      %-*s %15s\n", width, "Total", formatCount(d.Total())))
	sb.WriteString("\n")
}

// writeFocus writes the per-year series of the focus entity.
func (w *SimpleWriter) writeFocus(sb *strings.Builder, s *model.Summary) {
	d := s.FocusSeries
	if d.IsEmpty() && !w.showEmpty {
		return
	}

	writeSection(sb, fmt.Sprintf("%s: %s", sectionTitle(d.Name), s.FocusEntity))
	writeYearRows(sb, d)
}

// writeYearRows writes one "year  count" line per row.
func writeYearRows(sb *strings.Builder, d model.DerivedTable) {
	if d.IsEmpty() {
		sb.WriteString("  No data\n\n")
		return
	}
	for _, r := range d.Rows {
		sb.WriteString(fmt.Sprintf("  %4d  %15s\n", r.Year, formatCount(r.Emigrants)))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("Report generated by migtrends\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}
