package summary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sumit123-456/backend-project/internal/pkg/validator"
)

type GenerateSummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *GenerateSummaryRequest) Validate() error {
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

type FinalizeSummaryRequest struct {
	EmployeeID  string `json:"employee_id"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	FinalizedBy string `json:"-"`
}

func (r *FinalizeSummaryRequest) Validate() error {
	g := GenerateSummaryRequest{EmployeeID: r.EmployeeID, Month: r.Month, Year: r.Year}
	return g.Validate()
}

type SummaryResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	EmployeeCode     *string         `json:"employee_code,omitempty"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	PresentDays      int             `json:"present_days"`
	AbsentDays       int             `json:"absent_days"`
	HalfDays         int             `json:"half_days"`
	LateDays         int             `json:"late_days"`
	EarlyDepartures  int             `json:"early_departures"`
	LeaveDays        int             `json:"leave_days"`
	PaidLeaveDays    int             `json:"paid_leave_days"`
	UnpaidLeaveDays  int             `json:"unpaid_leave_days"`
	HolidayDays      int             `json:"holiday_days"`
	WeekendDays      int             `json:"weekend_days"`
	RemoteDays       int             `json:"remote_days"`
	TotalLateMinutes int             `json:"total_late_minutes"`
	WorkedHours      decimal.Decimal `json:"worked_hours"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	IsFinalized      bool            `json:"is_finalized"`
	FinalizedAt      *time.Time      `json:"finalized_at,omitempty"`
}

// SummaryService generates, serves, and finalizes monthly summaries.
// Generation overwrites any prior non-finalized summary for the same
// (employee, month, year); a finalized one is never touched again.
type SummaryService interface {
	Generate(ctx context.Context, req GenerateSummaryRequest) (SummaryResponse, error)
	Get(ctx context.Context, employeeID string, month, year int) (SummaryResponse, error)
	ListByMonth(ctx context.Context, month, year int) ([]SummaryResponse, error)
	Finalize(ctx context.Context, req FinalizeSummaryRequest) (SummaryResponse, error)
}
