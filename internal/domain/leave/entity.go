package leave

import "time"

// Type tags a leave request with its category. Unpaid leave is the
// only category that produces a payroll deduction.
type Type string

const (
	TypeCasual    Type = "casual"
	TypeSick      Type = "sick"
	TypeEarned    Type = "earned"
	TypeMaternity Type = "maternity"
	TypeUnpaid    Type = "unpaid"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCasual, TypeSick, TypeEarned, TypeMaternity, TypeUnpaid:
		return true
	}
	return false
}

// Paid reports whether days of this type draw salary.
func (t Type) Paid() bool {
	return t != TypeUnpaid
}

// Status tracks a request through the two-stage approval chain. Team
// leader review moves pending to tl_approved; HR review moves
// tl_approved to approved. Rejected and cancelled are terminal, as is
// approved.
type Status string

const (
	StatusPending    Status = "pending"
	StatusTLApproved Status = "tl_approved"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Terminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

type LeaveRequest struct {
	ID              string
	EmployeeID      string
	Type            Type
	StartDate       time.Time
	EndDate         time.Time
	TotalDays       int
	Reason          string
	Status          Status
	TLReviewedBy    *string
	TLReviewedAt    *time.Time
	HRReviewedBy    *string
	HRReviewedAt    *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// joined fields
	EmployeeName *string
	EmployeeCode *string
}

// InclusiveDays counts calendar days from start through end.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// Overlap returns how many days of the request fall inside [from, to].
func (lr *LeaveRequest) Overlap(from, to time.Time) int {
	start := lr.StartDate
	if start.Before(from) {
		start = from
	}
	end := lr.EndDate
	if end.After(to) {
		end = to
	}
	if end.Before(start) {
		return 0
	}
	return InclusiveDays(start, end)
}
