package leave

import "errors"

var (
	ErrLeaveNotFound      = errors.New("leave request not found")
	ErrInvalidDateRange   = errors.New("leave start date must not be after end date")
	ErrOverlappingLeave   = errors.New("an approved or pending leave already covers this range")
	ErrAlreadyReviewed    = errors.New("leave request has already been reviewed")
	ErrNotTeamLeader      = errors.New("reviewer is not this employee's team leader")
	ErrAwaitingTeamLeader = errors.New("leave request is still awaiting team leader review")
	ErrNotOwner           = errors.New("leave request belongs to another employee")
	ErrNotCancellable     = errors.New("leave request can no longer be cancelled")
)
