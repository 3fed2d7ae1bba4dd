// Package sqlite implements skycave.Database on top of SQLite, using a
// two-column key-value table with JSON document values. Useful when the data
// should live in a single inspectable file.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/glebarez/go-sqlite"

	skycave "github.com/robscovell-cx/skycave-management-system"
)

const (
	keyGuests     = "guests"
	keyReportRows = "tm30-rows"

	createStorageTable = `CREATE TABLE IF NOT EXISTS storage ("key" TEXT PRIMARY KEY, "value" TEXT NOT NULL)`
	queryValue         = `SELECT "value" FROM storage WHERE "key" = $1`
	upsertValue        = `INSERT INTO storage ("key", "value") VALUES ($1, $2) ON CONFLICT("key") DO UPDATE SET "value" = $2`
	deleteValue        = `DELETE FROM storage WHERE "key" = $1`
)

// SQLite implements skycave.Database on top of SQLite.
type SQLite struct {
	db *sql.DB
	l  *slog.Logger
}

// Open opens a SQLite database from the given location, initializing the
// schema if needed. The parent directory is created when missing.
func Open(dbFile string, logger *slog.Logger) (*SQLite, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := os.MkdirAll(filepath.Dir(dbFile), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: os.MkdirAll: %w", err)
	}
	db, err := sql.Open("sqlite", dbFile+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err = db.Exec(createStorageTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &SQLite{db: db, l: logger}, nil
}

// Close releases the underlying database handle.
func (db *SQLite) Close() error {
	return db.db.Close()
}

// Guests returns the stored guest list.
func (db *SQLite) Guests() ([]skycave.Guest, error) {
	var guests []skycave.Guest
	if err := db.getJSON(keyGuests, &guests); err != nil {
		return nil, err
	}
	return guests, nil
}

// SaveGuests replaces the stored guest list.
func (db *SQLite) SaveGuests(guests []skycave.Guest) error {
	return db.putJSON(keyGuests, guests)
}

// ReportRows returns the stored in-progress report rows.
func (db *SQLite) ReportRows() ([]skycave.ReportRow, error) {
	var rows []skycave.ReportRow
	if err := db.getJSON(keyReportRows, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SaveReportRows replaces the stored report rows.
func (db *SQLite) SaveReportRows(rows []skycave.ReportRow) error {
	return db.putJSON(keyReportRows, rows)
}

// ClearReportRows removes any stored report rows.
func (db *SQLite) ClearReportRows() error {
	if _, err := db.db.Exec(deleteValue, keyReportRows); err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}
	return nil
}

// getJSON reads and decodes the value at key into dst. A missing key leaves
// dst untouched; an undecodable value degrades to the empty state with a
// logged warning.
func (db *SQLite) getJSON(key string, dst any) error {
	var raw string
	if err := db.db.QueryRow(queryValue, key).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("row.Scan: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		db.l.Warn("discarding undecodable record",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
	return nil
}

func (db *SQLite) putJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}
	if _, err = db.db.Exec(upsertValue, key, string(raw)); err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}
	return nil
}
