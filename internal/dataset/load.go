package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/migtrends/internal/database"
	"github.com/nao1215/migtrends/internal/model"
)

// Format is the on-disk format of a dataset.
type Format string

const (
	// FormatCSV is a comma-separated file with a header row.
	FormatCSV Format = "csv"
	// FormatSQLite is a file written by database.Store.
	FormatSQLite Format = "sqlite"
)

// DetectFormat picks the format from the file extension.
// ".db", ".sqlite" and ".sqlite3" are SQLite; everything else is CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// Load reads the dataset at path. opts apply to CSV files.
func Load(ctx context.Context, path string, opts ...ReadOption) (*model.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to stat dataset: %w", err)
	}

	switch DetectFormat(path) {
	case FormatSQLite:
		return LoadSQLite(ctx, path)
	default:
		return LoadCSV(path, opts...)
	}
}

// LoadCSV reads a CSV dataset from a file.
func LoadCSV(path string, opts ...ReadOption) (*model.Table, error) {
	f, err := os.Open(path) //nolint:gosec // dataset path is user-provided on purpose
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return ReadCSV(f, path, opts...)
}

// LoadSQLite reads a dataset stored by "migtrends convert".
func LoadSQLite(ctx context.Context, path string) (*model.Table, error) {
	store, err := database.Open(path, database.ReadOnlyOptions())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, fs.ErrNotExist)
		}
		return nil, err
	}
	defer store.Close()

	table, err := store.Table(ctx)
	if err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}
	return table, nil
}
