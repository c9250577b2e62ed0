/*
config.go - Immutable engine configuration

PURPOSE:

	Collects every business constant in one value: the delivery window, the
	daily quota minimums, the holiday period, the bonus credit, the pay-tier
	allowances and the deduction divisor. Components receive a Config at
	construction instead of reading process-wide state, so tests can run
	against alternate windows without side effects.
*/
package shift

import "time"

// Rounding selects how a partial hour of missing time is counted when
// converting a duration shortfall to whole deductible hours. The source
// system never specified this; it is an explicit policy here.
type Rounding int

const (
	// RoundDown counts only fully missed hours (default; favors the driver).
	RoundDown Rounding = iota
	// RoundUp counts any started hour as missed.
	RoundUp
)

// MonthDay is a year-agnostic calendar bound for the holiday period.
type MonthDay struct {
	Month time.Month
	Day   int
}

// Config is the immutable rule set the engine computes against.
type Config struct {
	// Delivery window [WindowStart, WindowEnd) within each calendar day.
	// Shift time outside it counts as idle.
	WindowStart Seconds
	WindowEnd   Seconds

	// Daily active-time minimums for the quota check and the required-hours
	// accrual. HolidayMinimum applies inside the holiday period.
	OrdinaryMinimum Seconds
	HolidayMinimum  Seconds

	// Holiday period bounds, inclusive on both ends, any year.
	HolidayStart MonthDay
	HolidayEnd   MonthDay

	// BonusCredit is subtracted from monthly required hours per earned bonus.
	BonusCredit Seconds

	// TierAllowance maps a driver's pay tier to the whole hours of missing
	// time tolerated before deduction begins. Unknown tiers get no allowance.
	TierAllowance map[int]int

	// DeductionDivisor derives the per-hour deduction rate:
	// floor(basePay / DeductionDivisor).
	DeductionDivisor int64

	// MissingHoursRounding converts the required-vs-actual shortfall to
	// whole hours.
	MissingHoursRounding Rounding
}

// DefaultConfig returns the production rule set: delivery window 8:00-22:00,
// ordinary minimum 8h24m, holiday minimum 6h over April 10-30, 2h bonus
// credit, tier allowances 50/20/10/3, divisor 185.
func DefaultConfig() Config {
	return Config{
		WindowStart:     8 * Hour,
		WindowEnd:       22 * Hour,
		OrdinaryMinimum: 8*Hour + 24*Minute,
		HolidayMinimum:  6 * Hour,
		HolidayStart:    MonthDay{Month: time.April, Day: 10},
		HolidayEnd:      MonthDay{Month: time.April, Day: 30},
		BonusCredit:     2 * Hour,
		TierAllowance: map[int]int{
			1: 50,
			2: 20,
			3: 10,
			4: 3,
		},
		DeductionDivisor:     185,
		MissingHoursRounding: RoundDown,
	}
}

// Allowance returns the missing-hours allowance for a pay tier.
func (c Config) Allowance(tier int) int {
	return c.TierAllowance[tier]
}
