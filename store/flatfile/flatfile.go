/*
Package flatfile provides the line-oriented text file implementation of the
shift store.

PURPOSE:

	The shift file is the source of truth: one record per line, ten
	comma-separated fields, no header, no escaping. Every operation re-reads
	the file from disk, so each call observes the latest persisted state and
	nothing is cached across calls.

FILE FORMAT:

	driverID,driverName,date,startTime,endTime,duration,idle,active,metQuota,hasBonus

	date        yyyy-mm-dd
	start/end   clock strings, stored verbatim as supplied
	durations   h:mm:ss elapsed
	booleans    literal true/false

WRITE BEHAVIOR:

	Append rewrites the whole file from the sorted in-memory set; that is what
	keeps the store sorted ascending by date, at linear cost per append.
	SetBonus rewrites only when a line actually changed. Neither write is
	atomic across the read and the rewrite; a single sequenced caller is
	assumed.

TOLERANCE:

	Lines with fewer than ten fields are skipped by readers but carried
	through rewrites verbatim, to tolerate partially-written or legacy rows.

SEE ALSO:
  - shift/store.go: the interface this implements
  - store/sqlite:   the database-backed alternative
*/
package flatfile

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/warp/shift-engine/shift"
)

const fieldCount = 10

// Store is the flat-file shift store.
type Store struct {
	path string
	cfg  shift.Config
}

// New creates a store over the given file path. The file itself is created
// lazily on the first successful append.
func New(path string, cfg shift.Config) *Store {
	return &Store{path: path, cfg: cfg}
}

var _ shift.Store = (*Store)(nil)

// =============================================================================
// LINE CODEC
// =============================================================================

func encodeRecord(r shift.Record) string {
	return strings.Join([]string{
		r.DriverID,
		r.DriverName,
		r.Date.String(),
		r.StartTime,
		r.EndTime,
		r.Duration.String(),
		r.Idle.String(),
		r.Active.String(),
		fmt.Sprintf("%t", r.MetQuota),
		fmt.Sprintf("%t", r.HasBonus),
	}, ",")
}

func decodeRecord(line string) (shift.Record, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < fieldCount {
		return shift.Record{}, false
	}

	date, err := shift.ParseDate(fields[2])
	if err != nil {
		return shift.Record{}, false
	}
	duration, err := shift.ParseClock(fields[5])
	if err != nil {
		return shift.Record{}, false
	}
	idle, err := shift.ParseClock(fields[6])
	if err != nil {
		return shift.Record{}, false
	}
	active, err := shift.ParseClock(fields[7])
	if err != nil {
		return shift.Record{}, false
	}

	return shift.Record{
		DriverID:   fields[0],
		DriverName: fields[1],
		Date:       date,
		StartTime:  fields[3],
		EndTime:    fields[4],
		Duration:   duration,
		Idle:       idle,
		Active:     active,
		MetQuota:   fields[8] == "true",
		HasBonus:   fields[9] == "true",
	}, true
}

// =============================================================================
// READ SIDE
// =============================================================================

// readLines returns the raw lines of the file. A missing file reads as
// empty; any other failure propagates.
func (s *Store) readLines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read shift file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	// A trailing newline produces one empty final element; drop empties.
	out := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out, nil
}

// Records returns all well-formed records in store order. Structurally
// short or undecodable lines are skipped.
func (s *Store) Records(_ context.Context) ([]shift.Record, error) {
	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}

	var records []shift.Record
	for _, line := range lines {
		if r, ok := decodeRecord(line); ok {
			records = append(records, r)
		}
	}
	return records, nil
}

// =============================================================================
// APPEND
// =============================================================================

// entry pairs a raw line with its sort key. Lines whose date cannot be
// parsed keep a zero date and sort to the front, preserving their relative
// order under the stable sort.
type entry struct {
	raw  string
	date shift.Date
}

// Append derives the full record for the new shift and rewrites the file
// with it in date order. A (driverID, date) duplicate is rejected softly:
// the error unwraps to shift.ErrDuplicateShift and no write happens.
func (s *Store) Append(_ context.Context, ns shift.NewShift) (*shift.Record, error) {
	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(lines)+1)
	for _, line := range lines {
		e := entry{raw: line}
		fields := strings.Split(line, ",")
		if len(fields) >= 5 {
			if d, err := shift.ParseDate(fields[2]); err == nil {
				e.date = d
				if fields[0] == ns.DriverID && d.Equal(ns.Date) {
					return nil, &shift.DuplicateShiftError{DriverID: ns.DriverID, Date: ns.Date}
				}
			}
		}
		entries = append(entries, e)
	}

	rec, err := s.cfg.Derive(ns)
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry{raw: encodeRecord(rec), date: rec.Date})

	// Stable: equal dates keep chronological insertion order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].date.Before(entries[j].date)
	})

	if err := s.writeLines(entries); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) writeLines(entries []entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.raw)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write shift file: %w", err)
	}
	return nil
}

// =============================================================================
// BONUS UPDATE
// =============================================================================

// SetBonus overwrites the bonus field of the line matching driverID and
// date. The file is rewritten only if at least one line changed; a missing
// file or missing record leaves everything untouched. Short lines pass
// through verbatim.
func (s *Store) SetBonus(_ context.Context, driverID string, date shift.Date, bonus bool) error {
	lines, err := s.readLines()
	if err != nil || lines == nil {
		return err
	}

	want := date.String()
	value := fmt.Sprintf("%t", bonus)
	changed := false

	out := make([]entry, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, ",")
		if len(fields) >= fieldCount && fields[0] == driverID && fields[2] == want && fields[9] != value {
			fields[9] = value
			line = strings.Join(fields, ",")
			changed = true
		}
		out = append(out, entry{raw: line})
	}

	if !changed {
		return nil
	}
	return s.writeLines(out)
}
