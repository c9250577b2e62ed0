/*
store.go - Persistence interface for shift records

PURPOSE:

	Defines the interface between the domain logic and the record store.
	Implementations re-read their backing storage on every call, so every
	operation observes the latest persisted state.

IMPLEMENTATIONS:
  - store/flatfile: the line-oriented text file store (primary)
  - store/sqlite:   SQLite-backed alternative

MUTABILITY CONTRACT:

	Records are created only via Append. HasBonus is the only field mutable
	afterwards, via SetBonus. Nothing is ever deleted.

CONCURRENCY:

	Append and SetBonus are read-modify-rewrite sequences that are not atomic
	across writers; a single sequenced caller is assumed.
*/
package shift

import "context"

// Store persists shift records.
type Store interface {
	// Append derives and stores a new record. Returns ErrDuplicateShift
	// (wrapped in a DuplicateShiftError) without writing when a record for
	// (DriverID, Date) already exists.
	Append(ctx context.Context, s NewShift) (*Record, error)

	// SetBonus overwrites the bonus flag of the record matching driverID and
	// date. A missing store or missing record is a no-op, not an error.
	SetBonus(ctx context.Context, driverID string, date Date, bonus bool) error

	// Records returns all well-formed records, in store order (ascending by
	// date). A missing store yields an empty slice.
	Records(ctx context.Context) ([]Record, error)
}

// Derive builds the full record for a new shift, computing the derived
// fields in the fixed order duration -> idle -> active -> quota.
// HasBonus always starts false.
func (c Config) Derive(s NewShift) (Record, error) {
	duration, err := c.ShiftDuration(s.StartTime, s.EndTime)
	if err != nil {
		return Record{}, err
	}
	idle, err := c.IdleTime(s.StartTime, s.EndTime)
	if err != nil {
		return Record{}, err
	}
	active := c.ActiveTime(duration, idle)

	return Record{
		DriverID:   s.DriverID,
		DriverName: s.DriverName,
		Date:       s.Date,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Duration:   duration,
		Idle:       idle,
		Active:     active,
		MetQuota:   c.MetQuota(s.Date, active),
		HasBonus:   false,
	}, nil
}
