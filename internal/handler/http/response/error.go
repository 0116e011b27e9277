package response

import (
	"errors"
	"net/http"

	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/domain/auth"
	"github.com/sumit123-456/backend-project/internal/domain/employee"
	"github.com/sumit123-456/backend-project/internal/domain/leave"
	"github.com/sumit123-456/backend-project/internal/domain/payroll"
	"github.com/sumit123-456/backend-project/internal/domain/summary"
	"github.com/sumit123-456/backend-project/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, employee.ErrNotATeamLeader):
		BadRequest(w, "Referenced employee is not a team leader", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in recorded today", nil)
	case errors.Is(err, attendance.ErrOutsideWindow):
		BadRequest(w, "Outside the check-in window", nil)
	case errors.Is(err, attendance.ErrCheckOutTooEarly):
		BadRequest(w, "Check-out has not opened yet", nil)
	case errors.Is(err, attendance.ErrInsufficientHours):
		BadRequest(w, "Required work hours not completed", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Leave start date must not be after end date", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An active leave request already covers this range")
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request has already been reviewed")
	case errors.Is(err, leave.ErrAwaitingTeamLeader):
		Conflict(w, "Leave request is still awaiting team leader review")
	case errors.Is(err, leave.ErrNotTeamLeader):
		Forbidden(w, "Only the employee's team leader may review this request")
	case errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, "Leave request belongs to another employee")
	case errors.Is(err, leave.ErrNotCancellable):
		Conflict(w, "Leave request can no longer be cancelled")

	// Summary domain errors
	case errors.Is(err, summary.ErrSummaryNotFound):
		NotFound(w, "Monthly summary not found")
	case errors.Is(err, summary.ErrSummaryFinalized):
		Conflict(w, "Monthly summary is finalized")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollProcessed):
		Conflict(w, "Payroll record is already processed")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
