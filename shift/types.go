/*
Package shift provides the core domain types and calculations for the
delivery-driver shift engine.

PURPOSE:

	This package holds everything that is pure computation: the clock/duration
	codec, calendar dates, the delivery-window idle segmentation, the daily
	quota check, and the immutable configuration all of those read from.
	Persistence lives in store/, payroll math in payroll/.

KEY CONCEPTS IN THIS FILE (types.go):
  - Date:       a calendar day (yyyy-mm-dd on the wire)
  - NewShift:   caller-supplied input for an append
  - Record:     one fully-derived line of the shift store
  - DriverRate: one line of the read-only driver rate table

SEE ALSO:
  - clock.go:  Seconds codec
  - config.go: Config and defaults
  - store.go:  the Store interface backends implement
*/
package shift

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DATE - Calendar day, yyyy-mm-dd on the wire
// =============================================================================

// Date is a calendar date at day granularity. The zero value is the zero
// time and sorts before any real date.
type Date struct {
	Time time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate decodes a yyyy-mm-dd string.
func ParseDate(text string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(text))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string         { return d.Time.Format(dateLayout) }
func (d Date) Year() int              { return d.Time.Year() }
func (d Date) Month() time.Month      { return d.Time.Month() }
func (d Date) Day() int               { return d.Time.Day() }
func (d Date) Weekday() time.Weekday  { return d.Time.Weekday() }
func (d Date) IsZero() bool           { return d.Time.IsZero() }
func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }
func (d Date) Equal(other Date) bool  { return d.Time.Equal(other.Time) }

// ParseWeekday decodes a weekday name, case-insensitively.
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
}

// =============================================================================
// SHIFT RECORDS
// =============================================================================

// NewShift is the caller-supplied part of a shift. Everything else on a
// Record is derived at append time.
type NewShift struct {
	DriverID   string
	DriverName string
	Date       Date
	StartTime  string // 12-hour clock string, stored verbatim
	EndTime    string
}

// Record is one line of the shift store.
//
// Invariants maintained by Append:
//   - Active == Duration - Idle, clamped at zero
//   - MetQuota is a pure function of Date and Active
//   - (DriverID, Date) is unique across the store
type Record struct {
	DriverID   string
	DriverName string
	Date       Date
	StartTime  string
	EndTime    string
	Duration   Seconds
	Idle       Seconds
	Active     Seconds
	MetQuota   bool
	HasBonus   bool
}

// DriverRate is one line of the read-only driver rate table.
// BasePay is a monthly base salary; decimal avoids floating-point drift in
// the deduction math.
type DriverRate struct {
	DriverID string
	DayOff   time.Weekday
	BasePay  decimal.Decimal
	Tier     int
}
