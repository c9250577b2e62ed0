package payroll

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/warp/shift-engine/shift"
)

// NetPay applies the deduction formula to the driver's base pay:
//
//	missing    = max(0, required - actual), in whole hours per the
//	             configured rounding policy
//	deductible = max(0, missing - tierAllowance)
//	rate       = floor(basePay / divisor) per hour
//	net        = max(0, basePay - deductible * rate)
//
// The tier allowance is the number of missing hours tolerated with zero
// deduction. An unknown tier tolerates none.
func (e *Engine) NetPay(ctx context.Context, driverID string, actual, required shift.Seconds) (decimal.Decimal, error) {
	rate, err := e.rates.Rate(ctx, driverID)
	if err != nil {
		return decimal.Zero, err
	}

	missingHours := (required - actual).Hours(e.cfg.MissingHoursRounding)
	deductible := missingHours - e.cfg.Allowance(rate.Tier)
	if deductible <= 0 {
		return rate.BasePay, nil
	}

	perHour := rate.BasePay.Div(decimal.NewFromInt(e.cfg.DeductionDivisor)).Floor()
	net := rate.BasePay.Sub(perHour.Mul(decimal.NewFromInt(int64(deductible))))
	if net.IsNegative() {
		net = decimal.Zero
	}
	return net, nil
}
