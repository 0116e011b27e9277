package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, lr *LeaveRequest) error
	Update(ctx context.Context, lr *LeaveRequest) error
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)
	// ListApprovedOverlapping returns approved requests for one
	// employee whose range intersects [from, to].
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
	// CountActiveOverlapping counts pending, tl_approved, and approved
	// requests for one employee intersecting [from, to].
	CountActiveOverlapping(ctx context.Context, employeeID string, from, to time.Time) (int64, error)
	ListByStatusAndEmployees(ctx context.Context, status Status, employeeIDs []string) ([]LeaveRequest, error)
	ListByStatus(ctx context.Context, status Status) ([]LeaveRequest, error)
}
