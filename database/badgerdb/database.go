// Package badgerdb implements skycave.Database on top of Badger, a local
// key-value store. Records are stored as JSON documents under fixed keys, so
// every date round-trips through its RFC 3339 textual form.
package badgerdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	badger "github.com/dgraph-io/badger/v4"

	skycave "github.com/robscovell-cx/skycave-management-system"
)

const (
	keyGuests     = "skycave/guests"
	keyReportRows = "skycave/tm30-rows"
)

// BadgerDB implements skycave.Database on top of Badger.
type BadgerDB struct {
	db *badger.DB
	l  *slog.Logger
}

// Open opens (or initializes) a Badger database in the given directory.
func Open(dir string, logger *slog.Logger) (*BadgerDB, error) {
	return New(badger.DefaultOptions(dir).WithLogger(nil), logger)
}

// New opens a Badger database with the given options. Mostly useful for
// tests that want an in-memory instance.
func New(options badger.Options, logger *slog.Logger) (*BadgerDB, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("badger.Open: %w", err)
	}
	return &BadgerDB{db: db, l: logger}, nil
}

// Close releases the underlying store.
func (db *BadgerDB) Close() error {
	return db.db.Close()
}

// Guests returns the stored guest list.
func (db *BadgerDB) Guests() ([]skycave.Guest, error) {
	var guests []skycave.Guest
	if err := db.getJSON(keyGuests, &guests); err != nil {
		return nil, err
	}
	return guests, nil
}

// SaveGuests replaces the stored guest list.
func (db *BadgerDB) SaveGuests(guests []skycave.Guest) error {
	return db.putJSON(keyGuests, guests)
}

// ReportRows returns the stored in-progress report rows.
func (db *BadgerDB) ReportRows() ([]skycave.ReportRow, error) {
	var rows []skycave.ReportRow
	if err := db.getJSON(keyReportRows, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SaveReportRows replaces the stored report rows.
func (db *BadgerDB) SaveReportRows(rows []skycave.ReportRow) error {
	return db.putJSON(keyReportRows, rows)
}

// ClearReportRows removes any stored report rows.
func (db *BadgerDB) ClearReportRows() error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyReportRows))
	})
	if err != nil {
		return fmt.Errorf("badger delete %s: %w", keyReportRows, err)
	}
	return nil
}

// getJSON reads and decodes the value at key into dst. A missing key leaves
// dst untouched. A value that no longer decodes degrades to the empty state
// with a logged warning instead of failing the load.
func (db *BadgerDB) getJSON(key string, dst any) error {
	var raw []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("badger get %s: %w", key, err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		db.l.Warn("discarding undecodable record",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
	return nil
}

func (db *BadgerDB) putJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}
	err = db.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("badger set %s: %w", key, err)
	}
	return nil
}
