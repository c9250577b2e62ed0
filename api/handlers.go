/*
handlers.go - HTTP handlers for the shift engine

PURPOSE:

	Exposes the shift store and payroll engine over REST. Handles HTTP
	request/response and JSON serialization, and delegates every computation
	to the domain packages.

ENDPOINTS:

	Shifts:
	  GET  /api/shifts                                   List records
	  POST /api/shifts                                   Record a shift
	  PUT  /api/shifts/{driverID}/{date}/bonus           Set bonus flag

	Payroll (month is 1-12, matched across years):
	  GET  /api/drivers/{id}/months/{month}/bonus-count
	  GET  /api/drivers/{id}/months/{month}/active-time
	  GET  /api/drivers/{id}/months/{month}/required-hours
	  GET  /api/drivers/{id}/months/{month}/statement

ERROR HANDLING:
  - 400: malformed clock/date strings, bad month
  - 404: driver absent from the rate table
  - 409: duplicate (driver, date) append
  - 500: storage failures

SEE ALSO:
  - dto.go:    request/response shapes
  - server.go: router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/warp/shift-engine/payroll"
	"github.com/warp/shift-engine/shift"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  shift.Store
	Engine *payroll.Engine
}

// NewHandler creates a handler over a store and payroll engine.
func NewHandler(store shift.Store, engine *payroll.Engine) *Handler {
	return &Handler{Store: store, Engine: engine}
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

// ListShifts returns every record in store order.
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.Records(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read shifts", err)
		return
	}

	dtos := make([]ShiftDTO, len(records))
	for i, rec := range records {
		dtos[i] = toShiftDTO(rec)
	}
	writeJSON(w, http.StatusOK, map[string]any{"shifts": dtos})
}

// AppendShift records a new shift with its derived fields.
func (h *Handler) AppendShift(w http.ResponseWriter, r *http.Request) {
	var req AppendShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.DriverID == "" {
		writeError(w, http.StatusBadRequest, "driver_id is required", nil)
		return
	}

	date, err := shift.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	rec, err := h.Store.Append(r.Context(), shift.NewShift{
		DriverID:   req.DriverID,
		DriverName: req.DriverName,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	switch {
	case errors.Is(err, shift.ErrDuplicateShift):
		writeError(w, http.StatusConflict, "Shift already recorded for this driver and date", err)
		return
	case errors.Is(err, shift.ErrInvalidClock):
		writeError(w, http.StatusBadRequest, "Invalid clock string", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to record shift", err)
		return
	}

	writeJSON(w, http.StatusCreated, toShiftDTO(*rec))
}

// SetBonus updates the bonus flag of one record. Updating a record that
// does not exist is a no-op and still returns 200, mirroring the store.
func (h *Handler) SetBonus(w http.ResponseWriter, r *http.Request) {
	date, err := shift.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	var req SetBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	driverID := chi.URLParam(r, "driverID")
	if err := h.Store.SetBonus(r.Context(), driverID, date, req.Value); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update bonus", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"driver_id": driverID, "date": date.String(), "value": req.Value})
}

// =============================================================================
// PAYROLL HANDLERS
// =============================================================================

// BonusCount returns the month's bonus count, -1 when the driver has no
// bonus record anywhere.
func (h *Handler) BonusCount(w http.ResponseWriter, r *http.Request) {
	driverID, month, ok := h.driverMonth(w, r)
	if !ok {
		return
	}

	count, err := h.Engine.BonusCountForMonth(r.Context(), driverID, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count bonuses", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"driver_id": driverID, "month": int(month), "bonus_count": count})
}

// ActiveTime returns the month's total active time.
func (h *Handler) ActiveTime(w http.ResponseWriter, r *http.Request) {
	driverID, month, ok := h.driverMonth(w, r)
	if !ok {
		return
	}

	total, err := h.Engine.ActiveTimeForMonth(r.Context(), driverID, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to sum active time", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"driver_id": driverID, "month": int(month), "active_time": total.String()})
}

// RequiredHours returns the month's required hours, bonus credit applied.
func (h *Handler) RequiredHours(w http.ResponseWriter, r *http.Request) {
	driverID, month, ok := h.driverMonth(w, r)
	if !ok {
		return
	}

	bonusCount, err := h.Engine.BonusCountForMonth(r.Context(), driverID, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count bonuses", err)
		return
	}

	required, err := h.Engine.RequiredHours(r.Context(), driverID, month, bonusCount)
	if err != nil {
		h.writePayrollError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"driver_id": driverID, "month": int(month), "required_hours": required.String()})
}

// Statement returns the full monthly payroll statement.
func (h *Handler) Statement(w http.ResponseWriter, r *http.Request) {
	driverID, month, ok := h.driverMonth(w, r)
	if !ok {
		return
	}

	stmt, err := h.Engine.MonthlyStatement(r.Context(), driverID, month)
	if err != nil {
		h.writePayrollError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatementDTO(stmt))
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) driverMonth(w http.ResponseWriter, r *http.Request) (string, time.Month, bool) {
	driverID := chi.URLParam(r, "id")
	m, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || m < 1 || m > 12 {
		writeError(w, http.StatusBadRequest, "Month must be 1-12", err)
		return "", 0, false
	}
	return driverID, time.Month(m), true
}

func (h *Handler) writePayrollError(w http.ResponseWriter, err error) {
	if errors.Is(err, shift.ErrDriverNotFound) {
		writeError(w, http.StatusNotFound, "Driver not found in rate table", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Payroll computation failed", err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
