package leave

import (
	"context"
	"time"

	"github.com/sumit123-456/backend-project/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID string `json:"-"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: casual, sick, earned, maternity, unpaid",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewLeaveRequest struct {
	LeaveID    string  `json:"-"`
	ReviewerID string  `json:"-"`
	Approve    bool    `json:"approve"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *ReviewLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Approve && (r.Reason == nil || validator.IsEmpty(*r.Reason)) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    *string    `json:"employee_name,omitempty"`
	EmployeeCode    *string    `json:"employee_code,omitempty"`
	Type            Type       `json:"type"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	TotalDays       int        `json:"total_days"`
	Reason          string     `json:"reason"`
	Status          Status     `json:"status"`
	TLReviewedBy    *string    `json:"tl_reviewed_by,omitempty"`
	TLReviewedAt    *time.Time `json:"tl_reviewed_at,omitempty"`
	HRReviewedBy    *string    `json:"hr_reviewed_by,omitempty"`
	HRReviewedAt    *time.Time `json:"hr_reviewed_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type LeaveFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}

	if f.Status != nil {
		switch Status(*f.Status) {
		case StatusPending, StatusTLApproved, StatusApproved, StatusRejected, StatusCancelled:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, tl_approved, approved, rejected, cancelled",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListLeaveResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Requests   []LeaveResponse `json:"requests"`
}

// LeaveService covers submission, the two-stage review chain, and
// cancellation.
type LeaveService interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)
	// ReviewAsTeamLeader moves a pending request to tl_approved or
	// rejected. Only the owning employee's team leader may review.
	ReviewAsTeamLeader(ctx context.Context, req ReviewLeaveRequest) (LeaveResponse, error)
	// ReviewAsHR moves a tl_approved request to approved or rejected.
	ReviewAsHR(ctx context.Context, req ReviewLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, leaveID, employeeID string) (LeaveResponse, error)
	Get(ctx context.Context, leaveID string) (LeaveResponse, error)
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
	// ListPendingForReviewer returns requests awaiting the caller's
	// stage of the chain: pending ones for a team leader's reports,
	// tl_approved ones for HR.
	ListPendingForReviewer(ctx context.Context, reviewerID string) ([]LeaveResponse, error)
}
