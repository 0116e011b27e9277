package summary

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary holds per-employee attendance counters for one
// calendar month. It is a derived view: regenerating it from the same
// attendance and leave rows always produces the same counters. Once
// finalized it is immutable and regeneration is refused.
type MonthlySummary struct {
	ID              string
	EmployeeID      string
	Month           int
	Year            int
	PresentDays     int
	AbsentDays      int
	HalfDays        int
	LateDays        int
	EarlyDepartures int
	LeaveDays       int
	PaidLeaveDays   int
	UnpaidLeaveDays int
	HolidayDays     int
	WeekendDays     int
	RemoteDays      int
	TotalLateMinutes int
	WorkedHours     decimal.Decimal
	OvertimeHours   decimal.Decimal
	IsFinalized     bool
	FinalizedAt     *time.Time
	FinalizedBy     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// joined fields
	EmployeeName *string
	EmployeeCode *string
}
