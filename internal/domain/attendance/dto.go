package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sumit123-456/backend-project/internal/pkg/validator"
)

type CheckResponse struct {
	AttendanceID string          `json:"attendance_id"`
	Date         string          `json:"date"`
	CheckInTime  *time.Time      `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time      `json:"check_out_time,omitempty"`
	Status       Status          `json:"status"`
	WorkedHours  decimal.Decimal `json:"worked_hours"`
	LateMinutes  int             `json:"late_minutes,omitempty"`
}

type AttendanceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	EmployeeCode *string         `json:"employee_code,omitempty"`
	Date         string          `json:"date"`
	CheckInTime  *time.Time      `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time      `json:"check_out_time,omitempty"`
	Status       Status          `json:"status"`
	WorkedHours  decimal.Decimal `json:"worked_hours"`
	LateMinutes  int             `json:"late_minutes"`
	Remarks      string          `json:"remarks,omitempty"`
}

type GetAttendanceRequest struct {
	EmployeeID string `json:"-"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *GetAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckLogResponse struct {
	ID         string       `json:"id"`
	EmployeeID string       `json:"employee_id"`
	Action     CheckAction  `json:"action"`
	Outcome    CheckOutcome `json:"outcome"`
	Reason     DenialReason `json:"reason,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

type SweepResult struct {
	SweptAt    time.Time `json:"swept_at"`
	ClosedDays int       `json:"closed_days"`
}

// AttendanceService drives the check-in/check-out lifecycle and the
// office-close sweep.
type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID string, now time.Time) (CheckResponse, error)
	CheckOut(ctx context.Context, employeeID string, now time.Time) (CheckResponse, error)
	// Sweep force-closes every open day once the office-close time has
	// passed. Safe to call repeatedly.
	Sweep(ctx context.Context, now time.Time) (SweepResult, error)
	Today(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)
	ListByMonth(ctx context.Context, req GetAttendanceRequest) ([]AttendanceResponse, error)
	ListLogs(ctx context.Context, employeeID string, limit int) ([]CheckLogResponse, error)
}
