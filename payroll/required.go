package payroll

import (
	"context"
	"time"

	"github.com/warp/shift-engine/shift"
)

// RequiredHours computes the total hours the driver was obligated to work
// in the target month.
//
// Each distinct calendar date the driver has a record on contributes that
// date's daily minimum (holiday or ordinary), unless it falls on the
// driver's day-off weekday. Dates are deduplicated defensively even though
// the store's uniqueness invariant should make duplicates impossible.
// bonusCount earns a fixed credit per bonus, subtracted at the end and
// clamped at zero; a negative count (the aggregator's -1 sentinel) earns
// nothing.
//
// A driver absent from the rate table is an error, not a silent
// no-exemption pass: the result would misstate the obligation.
func (e *Engine) RequiredHours(ctx context.Context, driverID string, month time.Month, bonusCount int) (shift.Seconds, error) {
	rate, err := e.rates.Rate(ctx, driverID)
	if err != nil {
		return 0, err
	}

	records, err := e.store.Records(ctx)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool)
	var total shift.Seconds
	for _, r := range records {
		if r.DriverID != driverID || r.Date.Month() != month {
			continue
		}
		key := r.Date.String()
		if seen[key] {
			continue
		}
		seen[key] = true

		if r.Date.Weekday() == rate.DayOff {
			continue
		}
		total += e.cfg.DailyMinimum(r.Date)
	}

	if bonusCount > 0 {
		total -= shift.Seconds(bonusCount) * e.cfg.BonusCredit
	}
	if total < 0 {
		total = 0
	}
	return total, nil
}
