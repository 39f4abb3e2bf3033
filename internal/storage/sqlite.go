// Package storage provides SQLite-backed access to the constituency database
// and the conversation history kept alongside it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
)

const (
	defaultQueryTimeout = 30 * time.Second
	defaultMaxRows      = 10000
)

// Options tunes query execution limits
type Options struct {
	QueryTimeout time.Duration
	MaxRows      int
}

// Store wraps a SQLite database holding the constituency tables plus the
// conversations table used for chat history.
type Store struct {
	db   *sql.DB
	path string

	queryTimeout time.Duration
	maxRows      int
}

// ResultSet holds the output of a read-only query in column order
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// RowCount returns the number of returned rows
func (rs *ResultSet) RowCount() int {
	return len(rs.Rows)
}

// NewStore opens (creating if needed) the database at dbPath
func NewStore(dbPath string, opts Options) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTypeDatabase, "failed to create database directory %s", dir)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTypeDatabase, "failed to open database %s", dbPath)
	}

	// SQLite handles a single writer; keep the pool small.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTypeDatabase, "failed to ping database %s", dbPath)
	}

	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = defaultQueryTimeout
	}

	if opts.MaxRows <= 0 {
		opts.MaxRows = defaultMaxRows
	}

	return &Store{
		db:           db,
		path:         dbPath,
		queryTimeout: opts.QueryTimeout,
		maxRows:      opts.MaxRows,
	}, nil
}

// Initialize applies all pending schema migrations
func (s *Store) Initialize(ctx context.Context) error {
	return NewMigrationManager(s.db).MigrateUp(ctx)
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// DB exposes the underlying handle for migrations and tests
func (s *Store) DB() *sql.DB {
	return s.db
}

// Query runs a read-only statement and returns all rows up to the configured
// row cap. Callers are expected to validate the SQL before passing it here.
func (s *Store) Query(ctx context.Context, sqlQuery string) (*ResultSet, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, sqlQuery)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeExecution, "query execution failed")
	}

	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeExecution, "failed to read result columns")
	}

	result := &ResultSet{Columns: columns}

	for rows.Next() {
		if len(result.Rows) >= s.maxRows {
			return nil, errors.Newf(errors.ErrTypeExecution, "query returned more than %d rows", s.maxRows)
		}

		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))

		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, errors.Wrap(err, errors.ErrTypeExecution, "failed to scan row")
		}

		// The driver hands text back as []byte; keep results printable.
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		result.Rows = append(result.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeExecution, "row iteration failed")
	}

	return result, nil
}

// TableExists reports whether a table is present in the database
func (s *Store) TableExists(ctx context.Context, name string) (bool, error) {
	var count int

	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&count)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrTypeDatabase, "failed to check table %s", name)
	}

	return count > 0, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}

	return nil
}

// String implements fmt.Stringer for logging
func (s *Store) String() string {
	return fmt.Sprintf("sqlite(%s)", s.path)
}
