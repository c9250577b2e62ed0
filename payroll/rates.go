package payroll

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/shift-engine/shift"
)

// RateSource provides driver rate lookups. A miss is a
// shift.ErrDriverNotFound, not a zero value.
type RateSource interface {
	Rate(ctx context.Context, driverID string) (shift.DriverRate, error)
}

// RateFile is the flat-file rate table:
//
//	driverID,dayOff,basePay,tier
//
// dayOff is a weekday name (case-insensitive), basePay a monthly salary,
// tier an integer 1-4. The file is read-only to the engine and re-read on
// every lookup, so edits take effect immediately. Malformed lines are
// skipped.
type RateFile struct {
	path string
}

func NewRateFile(path string) *RateFile {
	return &RateFile{path: path}
}

var _ RateSource = (*RateFile)(nil)

// Rate returns the rate record for a driver. A missing file reads as an
// empty table, which lands in the same DriverNotFoundError as an absent
// driver.
func (f *RateFile) Rate(_ context.Context, driverID string) (shift.DriverRate, error) {
	data, err := os.ReadFile(f.path)
	if err != nil && !os.IsNotExist(err) {
		return shift.DriverRate{}, fmt.Errorf("read rate file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(strings.TrimSpace(line), ",")
		if len(fields) < 4 || fields[0] != driverID {
			continue
		}

		dayOff, err := shift.ParseWeekday(fields[1])
		if err != nil {
			continue
		}
		basePay, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
		if err != nil {
			continue
		}
		tier, err := strconv.Atoi(strings.TrimSpace(fields[3]))
		if err != nil {
			continue
		}

		return shift.DriverRate{
			DriverID: driverID,
			DayOff:   dayOff,
			BasePay:  basePay,
			Tier:     tier,
		}, nil
	}
	return shift.DriverRate{}, &shift.DriverNotFoundError{DriverID: driverID}
}
