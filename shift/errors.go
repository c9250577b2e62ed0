/*
errors.go - Centralized error types for the shift engine

PURPOSE:

	All error types in one place for consistency and discoverability.
	Store backends and the payroll package wrap these with added context.

USAGE:

	Callers branch on sentinels:

	  if errors.Is(err, shift.ErrDuplicateShift) {
	      // already recorded, safe to ignore
	  }
*/
package shift

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidClock is returned when a clock or duration string cannot be
	// decoded. The original system produced garbage values instead; here the
	// failure is explicit.
	ErrInvalidClock = errors.New("invalid clock string")

	// ErrInvalidDate is returned for a date not in yyyy-mm-dd form.
	ErrInvalidDate = errors.New("invalid date string")

	// ErrInvalidWeekday is returned for an unrecognized weekday name in the
	// rate table.
	ErrInvalidWeekday = errors.New("invalid weekday name")

	// ErrDuplicateShift is returned when appending a shift for a
	// (driverID, date) pair that already exists. This is a soft rejection:
	// no write was performed and the store is unchanged.
	ErrDuplicateShift = errors.New("duplicate shift for driver and date")

	// ErrDriverNotFound is returned when a driver is absent from the rate
	// table during required-hours or pay computation.
	ErrDriverNotFound = errors.New("driver not found in rate table")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// DuplicateShiftError identifies the record that blocked an append.
type DuplicateShiftError struct {
	DriverID string
	Date     Date
}

func (e *DuplicateShiftError) Error() string {
	return fmt.Sprintf("shift already recorded: driver %s on %s", e.DriverID, e.Date)
}

func (e *DuplicateShiftError) Unwrap() error { return ErrDuplicateShift }

// DriverNotFoundError identifies the missing rate-table entry.
type DriverNotFoundError struct {
	DriverID string
}

func (e *DriverNotFoundError) Error() string {
	return fmt.Sprintf("driver %s has no rate table entry", e.DriverID)
}

func (e *DriverNotFoundError) Unwrap() error { return ErrDriverNotFound }

// IsClientError returns true if the error is due to invalid caller input
// rather than a storage failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidClock) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidWeekday) ||
		errors.Is(err, ErrDuplicateShift)
}

// IsNotFound returns true if the error indicates a missing driver.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDriverNotFound)
}
