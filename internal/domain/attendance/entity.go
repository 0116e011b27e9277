package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the derived state of one employee's workday.
type Status string

const (
	StatusPresent        Status = "present"
	StatusAbsent         Status = "absent"
	StatusHalfDay        Status = "half_day"
	StatusLate           Status = "late"
	StatusEarlyDeparture Status = "early_departure"
	StatusOnLeave        Status = "on_leave"
	StatusHoliday        Status = "holiday"
	StatusWeekend        Status = "weekend"
	StatusRemote         Status = "remote"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLate,
		StatusEarlyDeparture, StatusOnLeave, StatusHoliday, StatusWeekend, StatusRemote:
		return true
	}
	return false
}

// AttendanceDay is one record per (employee, calendar date).
type AttendanceDay struct {
	ID           string
	EmployeeID   string
	Date         time.Time // date component only, midnight
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Status       Status
	WorkedHours  decimal.Decimal
	LateMinutes  int
	Remarks      string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// joined fields
	EmployeeName *string
	EmployeeCode *string
}

// CheckAction identifies the operation recorded in a CheckLog entry.
type CheckAction string

const (
	ActionCheckIn      CheckAction = "check_in"
	ActionCheckOut     CheckAction = "check_out"
	ActionAutoCheckOut CheckAction = "auto_check_out"
)

// CheckOutcome marks a CheckLog entry as accepted or denied.
type CheckOutcome string

const (
	OutcomeSuccess CheckOutcome = "success"
	OutcomeDenied  CheckOutcome = "denied"
)

// DenialReason names why a check attempt was refused. Recorded in the
// check log for audit, never used for control flow.
type DenialReason string

const (
	DenialNone              DenialReason = ""
	DenialWeekend           DenialReason = "weekend"
	DenialBeforeOpen        DenialReason = "before_open"
	DenialAfterClose        DenialReason = "after_close"
	DenialAlreadyCheckedIn  DenialReason = "already_checked_in"
	DenialAlreadyCheckedOut DenialReason = "already_checked_out"
	DenialNotCheckedIn      DenialReason = "not_checked_in"
	DenialInsufficientHours DenialReason = "insufficient_hours"
	DenialTooEarly          DenialReason = "too_early"
)

// CheckLog is an append-only audit entry for every check attempt,
// successful or denied.
type CheckLog struct {
	ID         string
	EmployeeID string
	Action     CheckAction
	Outcome    CheckOutcome
	Reason     DenialReason
	OccurredAt time.Time
	CreatedAt  time.Time
}
