/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:

	Defines the JSON structures for API communication, decoupling the domain
	model from the external contract. Durations travel as their canonical
	h:mm:ss strings, dates as yyyy-mm-dd, money as a decimal string.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/shift-engine/payroll"
	"github.com/warp/shift-engine/shift"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ShiftDTO represents one shift record in API responses.
type ShiftDTO struct {
	DriverID   string `json:"driver_id"`
	DriverName string `json:"driver_name"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Duration   string `json:"duration"`
	IdleTime   string `json:"idle_time"`
	ActiveTime string `json:"active_time"`
	MetQuota   bool   `json:"met_quota"`
	HasBonus   bool   `json:"has_bonus"`
}

// AppendShiftRequest is the request to record a shift.
type AppendShiftRequest struct {
	DriverID   string `json:"driver_id"`
	DriverName string `json:"driver_name"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// SetBonusRequest is the request body for the bonus-flag update.
type SetBonusRequest struct {
	Value bool `json:"value"`
}

// StatementDTO is a driver's monthly payroll statement.
type StatementDTO struct {
	DriverID      string `json:"driver_id"`
	Month         int    `json:"month"`
	BonusCount    int    `json:"bonus_count"`
	ActiveTime    string `json:"active_time"`
	RequiredHours string `json:"required_hours"`
	NetPay        string `json:"net_pay"`
}

// ErrorResponse is the JSON shape of every error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toShiftDTO(r shift.Record) ShiftDTO {
	return ShiftDTO{
		DriverID:   r.DriverID,
		DriverName: r.DriverName,
		Date:       r.Date.String(),
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Duration:   r.Duration.String(),
		IdleTime:   r.Idle.String(),
		ActiveTime: r.Active.String(),
		MetQuota:   r.MetQuota,
		HasBonus:   r.HasBonus,
	}
}

func toStatementDTO(s *payroll.Statement) StatementDTO {
	return StatementDTO{
		DriverID:      s.DriverID,
		Month:         int(s.Month),
		BonusCount:    s.BonusCount,
		ActiveTime:    s.ActiveTime.String(),
		RequiredHours: s.RequiredTime.String(),
		NetPay:        s.NetPay.String(),
	}
}
