package report

import (
	"io"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nao1215/migtrends/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *model.Summary) (int, error)
}

// MultiWriter writes to multiple Writers in order.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the summary to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(summary *model.Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// printer formats counts with English digit grouping.
var printer = message.NewPrinter(language.English)

// titler title-cases derived table names.
var titler = cases.Title(language.English)

// formatCount renders a count rounded to a whole number with thousands
// separators, e.g. 1234567.4 -> "1,234,567".
func formatCount(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// sectionTitle turns a derived table name like "yearly_totals" into
// "Yearly Totals".
func sectionTitle(name string) string {
	return titler.String(strings.ReplaceAll(name, "_", " "))
}

// timestampLayout is the format of GeneratedAt in text reports.
const timestampLayout = "2006-01-02 15:04:05 MST"
