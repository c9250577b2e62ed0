package payroll

import (
	"context"
	"time"

	"github.com/warp/shift-engine/shift"
)

// BonusCountForMonth counts the driver's bonus-flagged records in the
// target month (any year).
//
// It returns -1 when the driver has no bonus-flagged record anywhere in the
// store, even if non-bonus records exist. Driver existence is deliberately
// tied to bonus records only; callers use the sentinel to distinguish
// "never earned a bonus" from "earned none this month".
func (e *Engine) BonusCountForMonth(ctx context.Context, driverID string, month time.Month) (int, error) {
	records, err := e.store.Records(ctx)
	if err != nil {
		return 0, err
	}

	hasAny := false
	count := 0
	for _, r := range records {
		if r.DriverID != driverID || !r.HasBonus {
			continue
		}
		hasAny = true
		if r.Date.Month() == month {
			count++
		}
	}

	if !hasAny {
		return -1, nil
	}
	return count, nil
}

// ActiveTimeForMonth sums active time over all of the driver's records in
// the target month, bonus or not. No matching records sums to zero.
func (e *Engine) ActiveTimeForMonth(ctx context.Context, driverID string, month time.Month) (shift.Seconds, error) {
	records, err := e.store.Records(ctx)
	if err != nil {
		return 0, err
	}

	var total shift.Seconds
	for _, r := range records {
		if r.DriverID == driverID && r.Date.Month() == month {
			total += r.Active
		}
	}
	return total, nil
}
