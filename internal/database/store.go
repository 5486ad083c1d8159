package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/migtrends/internal/model"
)

// DefaultFileName is the file name used when a directory is given to "convert".
const DefaultFileName = "migtrends.db"

// ErrNoDataset is returned when a store holds no imported dataset.
var ErrNoDataset = errors.New("no dataset imported")

// Store is a SQLite file holding one imported emigration dataset.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// path is the path to the SQLite database file.
	path string

	// readOnly is true when the store was opened with Options.ReadOnly.
	readOnly bool
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file and its parent directory
	// if they don't exist. Ignored when ReadOnly is set.
	CreateIfNotExists bool

	// ReadOnly opens the file without write access. The file must exist.
	ReadOnly bool

	// EnableWAL enables Write-Ahead Logging. Ignored when ReadOnly is set.
	EnableWAL bool
}

// DefaultOptions returns the options used by "migtrends convert".
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// ReadOnlyOptions returns the options used by the dataset loader.
func ReadOnlyOptions() Options {
	return Options{ReadOnly: true}
}

// Metadata describes the dataset stored in a Store.
type Metadata struct {
	Source     string
	ImportedAt time.Time
	Records    int
}

// Open opens or creates a Store at path.
func Open(path string, opts Options) (*Store, error) {
	create := opts.CreateIfNotExists && !opts.ReadOnly

	if !create {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s: %w", path, err)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	var dsn string
	switch {
	case opts.ReadOnly:
		dsn = path + "?mode=ro"
	case create:
		dsn = path + "?mode=rwc"
	default:
		dsn = path + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:       db,
		path:     path,
		readOnly: opts.ReadOnly,
	}

	if opts.ReadOnly {
		if err := db.PingContext(context.Background()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return s, nil
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- One row per (entity, year) in source order
	CREATE TABLE IF NOT EXISTS emigrants (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		entity TEXT NOT NULL,
		year INTEGER NOT NULL,
		total REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_emigrants_entity ON emigrants(entity);
	CREATE INDEX IF NOT EXISTS idx_emigrants_year ON emigrants(year);

	-- Describes the last import
	CREATE TABLE IF NOT EXISTS imports (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		source TEXT NOT NULL,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		records INTEGER NOT NULL
	);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// ReplaceTable replaces the stored dataset with the records of table.
// The previous content is removed in the same transaction.
func (s *Store) ReplaceTable(ctx context.Context, table *model.Table) (err error) {
	if s.readOnly {
		return fmt.Errorf("failed to replace dataset: %s is opened read-only", s.path)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM emigrants"); err != nil {
		return fmt.Errorf("failed to clear dataset: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO emigrants (entity, year, total) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range table.Records() {
		if _, err = stmt.ExecContext(ctx, r.Entity, r.Year, r.Emigrants); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i+1, err)
		}
	}

	query := `
	INSERT INTO imports (id, source, records) VALUES (1, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		source = excluded.source,
		records = excluded.records,
		imported_at = CURRENT_TIMESTAMP
	`
	if _, err = tx.ExecContext(ctx, query, table.Source(), table.Len()); err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

// Metadata returns information about the stored dataset.
// It returns ErrNoDataset if nothing was imported yet.
func (s *Store) Metadata(ctx context.Context) (Metadata, error) {
	var meta Metadata
	var importedAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT source, imported_at, records FROM imports WHERE id = 1",
	).Scan(&meta.Source, &importedAt, &meta.Records)
	if errors.Is(err, sql.ErrNoRows) {
		return Metadata{}, ErrNoDataset
	}
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read import metadata: %w", err)
	}

	meta.ImportedAt = parseTimestamp(importedAt)
	return meta, nil
}

// Table loads the stored dataset in import order.
// The returned table's source is the database path.
func (s *Store) Table(ctx context.Context) (*model.Table, error) {
	if _, err := s.Metadata(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT entity, year, total FROM emigrants ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(&r.Entity, &r.Year, &r.Emigrants); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	return model.NewTable(s.path, records), nil
}

// timestampFormats lists the formats SQLite may use for DATETIME values.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default
	"2006-01-02T15:04:05Z",    // RFC3339 without nanoseconds
	time.RFC3339,              // RFC3339
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp parses a SQLite timestamp, returning the zero time on failure.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
