/*
Package sqlite provides a SQLite-backed implementation of the shift store.

PURPOSE:

	Drop-in alternative to the flat-file store for embedders that want an
	indexed backend. Same interface, same invariants: (driver_id, date) is
	unique, records are never deleted, and has_bonus is the only mutable
	column.

UNIQUENESS:

	The flat file enforces the dedup invariant with a read-scan before every
	append; here a UNIQUE index does it, and the constraint violation is
	mapped back to shift.ErrDuplicateShift so callers see the same soft
	rejection either way.

WAL MODE:

	SQLite is opened with WAL (Write-Ahead Logging) for better crash recovery;
	readers don't block the writer.

USAGE:

	store, err := sqlite.New("./shifts.db", shift.DefaultConfig())
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()

SEE ALSO:
  - shift/store.go: interface definition
  - store/flatfile: the text-file implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/shift-engine/shift"
)

// Store implements shift.Store on SQLite.
type Store struct {
	db  *sql.DB
	cfg shift.Config
	mu  sync.Mutex
}

// New opens (or creates) the database at dbPath. Use ":memory:" for an
// in-memory database.
func New(dbPath string, cfg shift.Config) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

var _ shift.Store = (*Store)(nil)

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS shifts (
		driver_id   TEXT NOT NULL,
		driver_name TEXT NOT NULL,
		date        TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		duration    INTEGER NOT NULL,
		idle        INTEGER NOT NULL,
		active      INTEGER NOT NULL,
		met_quota   INTEGER NOT NULL,
		has_bonus   INTEGER NOT NULL DEFAULT 0
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_shifts_driver_date
		ON shifts(driver_id, date);

	CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append derives the record and inserts it. A (driver_id, date) duplicate
// trips the unique index and surfaces as shift.ErrDuplicateShift, matching
// the flat-file store's soft rejection.
func (s *Store) Append(ctx context.Context, ns shift.NewShift) (*shift.Record, error) {
	rec, err := s.cfg.Derive(ns)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO shifts (driver_id, driver_name, date, start_time, end_time,
			duration, idle, active, met_quota, has_bonus)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.DriverID, rec.DriverName, rec.Date.String(), rec.StartTime, rec.EndTime,
		int(rec.Duration), int(rec.Idle), int(rec.Active), rec.MetQuota, rec.HasBonus,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, &shift.DuplicateShiftError{DriverID: ns.DriverID, Date: ns.Date}
		}
		return nil, fmt.Errorf("insert shift: %w", err)
	}
	return &rec, nil
}

// SetBonus updates the bonus flag. A missing record is a no-op.
func (s *Store) SetBonus(ctx context.Context, driverID string, date shift.Date, bonus bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`UPDATE shifts SET has_bonus = ? WHERE driver_id = ? AND date = ?`,
		bonus, driverID, date.String(),
	)
	if err != nil {
		return fmt.Errorf("update bonus: %w", err)
	}
	return nil
}

// Records returns all records ascending by date. The secondary rowid order
// preserves insertion order for equal dates, like the flat file's stable
// sort.
func (s *Store) Records(ctx context.Context) ([]shift.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT driver_id, driver_name, date, start_time, end_time,
			duration, idle, active, met_quota, has_bonus
		FROM shifts ORDER BY date ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("query shifts: %w", err)
	}
	defer rows.Close()

	var records []shift.Record
	for rows.Next() {
		var (
			r                      shift.Record
			dateStr                string
			duration, idle, active int
		)
		if err := rows.Scan(&r.DriverID, &r.DriverName, &dateStr, &r.StartTime, &r.EndTime,
			&duration, &idle, &active, &r.MetQuota, &r.HasBonus); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		date, err := shift.ParseDate(dateStr)
		if err != nil {
			continue // tolerate rows written out-of-band, like the flat file's skip
		}
		r.Date = date
		r.Duration = shift.Seconds(duration)
		r.Idle = shift.Seconds(idle)
		r.Active = shift.Seconds(active)
		records = append(records, r)
	}
	return records, rows.Err()
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
