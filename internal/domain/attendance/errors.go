package attendance

import "errors"

var (
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrAlreadyCheckedOut  = errors.New("already checked out today")
	ErrNotCheckedIn       = errors.New("no check-in recorded today")
	ErrOutsideWindow      = errors.New("outside the check-in window")
	ErrCheckOutTooEarly   = errors.New("check-out has not opened yet")
	ErrInsufficientHours  = errors.New("required work hours not completed")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
