package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionCategory names one itemized deduction line.
type DeductionCategory string

const (
	DeductionHalfDay         DeductionCategory = "half_day"
	DeductionAbsence         DeductionCategory = "absence"
	DeductionUnpaidLeave     DeductionCategory = "unpaid_leave"
	DeductionLateArrival     DeductionCategory = "late_arrival"
	DeductionProvidentFund   DeductionCategory = "provident_fund"
	DeductionProfessionalTax DeductionCategory = "professional_tax"
)

// PayrollRecord is the computed salary for one employee and month.
// Once processed it is locked against recalculation.
type PayrollRecord struct {
	ID              string
	EmployeeID      string
	Month           int
	Year            int
	BaseSalary      decimal.Decimal
	Allowances      decimal.Decimal
	OvertimePay     decimal.Decimal
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	IsProcessed     bool
	ProcessedAt     *time.Time
	ProcessedBy     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Lines []DeductionLine

	// joined fields
	EmployeeName *string
	EmployeeCode *string
}

// DeductionLine is an itemized child row of a PayrollRecord, kept for
// audit display. Lines are regenerated from scratch on every
// recalculation.
type DeductionLine struct {
	ID        string
	PayrollID string
	Category  DeductionCategory
	// Quantity is the count the line was computed from (days or
	// occurrences); zero for flat-rate lines.
	Quantity int
	Amount   decimal.Decimal
}
