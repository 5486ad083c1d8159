package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/nao1215/migtrends/internal/model"
)

// Column names of the emigration CSV.
const (
	ColumnEntity    = "Entity"
	ColumnYear      = "Year"
	ColumnEmigrants = "Total number of emigrants"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\ufeff"

// columnIndex holds the positions of the required columns in the header.
type columnIndex struct {
	entity    int
	year      int
	emigrants int
}

// errNoCount marks a row whose count cell is blank.
var errNoCount = errors.New("count is missing")

// readOptions holds the settings of ReadCSV.
type readOptions struct {
	logger *slog.Logger
}

// ReadOption configures ReadCSV.
type ReadOption func(*readOptions)

// WithLogger sets the logger that reports skipped rows.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) ReadOption {
	return func(o *readOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ReadCSV parses CSV data into a Table. source is used in error messages and
// recorded as the table's source.
//
// Rows with a blank count cell are missing data, not errors: they are left
// out of the table and logged at Debug level.
func ReadCSV(r io.Reader, source string, opts ...ReadOption) (*model.Table, error) {
	o := readOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Source: source, Line: 1, Err: fmt.Errorf("%w: empty file", ErrMissingColumn)}
		}
		return nil, &ParseError{Source: source, Line: 1, Err: err}
	}

	idx, err := indexColumns(header)
	if err != nil {
		return nil, &ParseError{Source: source, Line: 1, Err: err}
	}

	var records []model.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Source: source, Line: csvErr.Line, Err: csvErr.Err}
			}
			return nil, &ParseError{Source: source, Err: err}
		}
		line, _ := reader.FieldPos(0)

		rec, err := parseRow(row, idx)
		if errors.Is(err, errNoCount) {
			o.logger.Debug("skipping row without emigrant count",
				"source", source,
				"line", line,
				"entity", rec.Entity,
				"year", rec.Year,
			)
			continue
		}
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Source = source
				pe.Line = line
				return nil, pe
			}
			return nil, &ParseError{Source: source, Line: line, Err: err}
		}
		records = append(records, rec)
	}

	return model.NewTable(source, records), nil
}

// indexColumns locates the required columns in the header row.
func indexColumns(header []string) (columnIndex, error) {
	idx := columnIndex{entity: -1, year: -1, emigrants: -1}
	for i, h := range header {
		name := h
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		switch name {
		case ColumnEntity:
			idx.entity = i
		case ColumnYear:
			idx.year = i
		case ColumnEmigrants:
			idx.emigrants = i
		}
	}

	var missing []string
	if idx.entity < 0 {
		missing = append(missing, ColumnEntity)
	}
	if idx.year < 0 {
		missing = append(missing, ColumnYear)
	}
	if idx.emigrants < 0 {
		missing = append(missing, ColumnEmigrants)
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

// parseRow converts one CSV row into a Record. A blank count returns
// errNoCount together with the entity and year of the row.
func parseRow(row []string, idx columnIndex) (model.Record, error) {
	entity := strings.TrimSpace(row[idx.entity])

	yearText := strings.TrimSpace(row[idx.year])
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return model.Record{}, &ParseError{
			Column: ColumnYear,
			Err:    fmt.Errorf("%w: %q is not an integer year", ErrInvalidValue, yearText),
		}
	}

	countText := strings.TrimSpace(row[idx.emigrants])
	if countText == "" {
		return model.Record{Entity: entity, Year: year}, errNoCount
	}
	count, err := strconv.ParseFloat(countText, 64)
	if err != nil || math.IsNaN(count) || math.IsInf(count, 0) {
		return model.Record{}, &ParseError{
			Column: ColumnEmigrants,
			Err:    fmt.Errorf("%w: %q is not a number", ErrInvalidValue, countText),
		}
	}
	if count < 0 {
		return model.Record{}, &ParseError{
			Column: ColumnEmigrants,
			Err:    fmt.Errorf("%w: %q is negative", ErrInvalidValue, countText),
		}
	}

	return model.Record{Entity: entity, Year: year, Emigrants: count}, nil
}
