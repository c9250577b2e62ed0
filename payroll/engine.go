/*
Package payroll derives monthly payroll figures from the shift store and the
driver rate table.

PURPOSE:

	Three calculators compose into a monthly statement:
	- the aggregator counts bonuses and sums active time per month
	- the required-hours engine combines day-off, holiday period and earned
	  bonus credit into the hours a driver was obligated to work
	- the pay calculator applies the tier allowance and per-hour deduction
	  rate to the driver's base pay

	The Engine reads the store and rate table fresh on every call; nothing is
	cached between calls.

SEE ALSO:
  - rates.go:     the rate table source
  - aggregate.go: monthly aggregation
  - required.go:  required-hours policy
  - pay.go:       net-pay formula
*/
package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/shift-engine/shift"
)

// Engine holds the dependencies of the payroll calculators.
type Engine struct {
	store shift.Store
	rates RateSource
	cfg   shift.Config
}

// NewEngine creates an engine over a shift store and a rate source.
func NewEngine(store shift.Store, rates RateSource, cfg shift.Config) *Engine {
	return &Engine{store: store, rates: rates, cfg: cfg}
}

// Statement is a driver's payroll figures for one month.
type Statement struct {
	DriverID     string
	Month        time.Month
	BonusCount   int // -1 when the driver has no bonus record anywhere
	ActiveTime   shift.Seconds
	RequiredTime shift.Seconds
	NetPay       decimal.Decimal
}

// MonthlyStatement runs the full composition for one driver and month:
// bonus count, active time, required hours, net pay.
func (e *Engine) MonthlyStatement(ctx context.Context, driverID string, month time.Month) (*Statement, error) {
	bonusCount, err := e.BonusCountForMonth(ctx, driverID, month)
	if err != nil {
		return nil, err
	}
	active, err := e.ActiveTimeForMonth(ctx, driverID, month)
	if err != nil {
		return nil, err
	}
	required, err := e.RequiredHours(ctx, driverID, month, bonusCount)
	if err != nil {
		return nil, err
	}
	net, err := e.NetPay(ctx, driverID, active, required)
	if err != nil {
		return nil, err
	}

	return &Statement{
		DriverID:     driverID,
		Month:        month,
		BonusCount:   bonusCount,
		ActiveTime:   active,
		RequiredTime: required,
		NetPay:       net,
	}, nil
}
