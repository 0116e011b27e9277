package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sumit123-456/backend-project/internal/pkg/validator"
)

type CalculatePayrollRequest struct {
	EmployeeID string          `json:"employee_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Allowances decimal.Decimal `json:"allowances"`
	Overtime   decimal.Decimal `json:"overtime"`
}

func (r *CalculatePayrollRequest) Validate() error {
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

	if r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must be non-negative",
		})
	}

	if r.Overtime.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime",
			Message: "overtime must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProcessPayrollRequest struct {
	EmployeeID  string `json:"employee_id"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	ProcessedBy string `json:"-"`
}

func (r *ProcessPayrollRequest) Validate() error {
	c := CalculatePayrollRequest{EmployeeID: r.EmployeeID, Month: r.Month, Year: r.Year}
	return c.Validate()
}

type DeductionLineResponse struct {
	Category DeductionCategory `json:"category"`
	Quantity int               `json:"quantity,omitempty"`
	Amount   decimal.Decimal   `json:"amount"`
}

type PayrollResponse struct {
	ID              string                  `json:"id"`
	EmployeeID      string                  `json:"employee_id"`
	EmployeeName    *string                 `json:"employee_name,omitempty"`
	EmployeeCode    *string                 `json:"employee_code,omitempty"`
	Month           int                     `json:"month"`
	Year            int                     `json:"year"`
	BaseSalary      decimal.Decimal         `json:"base_salary"`
	Allowances      decimal.Decimal         `json:"allowances"`
	OvertimePay     decimal.Decimal         `json:"overtime_pay"`
	GrossSalary     decimal.Decimal         `json:"gross_salary"`
	TotalDeductions decimal.Decimal         `json:"total_deductions"`
	NetSalary       decimal.Decimal         `json:"net_salary"`
	IsProcessed     bool                    `json:"is_processed"`
	ProcessedAt     *time.Time              `json:"processed_at,omitempty"`
	Lines           []DeductionLineResponse `json:"deduction_lines"`
}

// PayrollService computes, serves, and locks monthly payroll records.
// Recalculation overwrites the record and regenerates its deduction
// lines from scratch; a processed record is refused.
type PayrollService interface {
	Calculate(ctx context.Context, req CalculatePayrollRequest) (PayrollResponse, error)
	Get(ctx context.Context, employeeID string, month, year int) (PayrollResponse, error)
	ListByMonth(ctx context.Context, month, year int) ([]PayrollResponse, error)
	Process(ctx context.Context, req ProcessPayrollRequest) (PayrollResponse, error)
	// Delete discards an unprocessed record and its deduction lines.
	Delete(ctx context.Context, employeeID string, month, year int) error
}
