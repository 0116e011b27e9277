package attendance

import (
	"context"
	"time"
)

// AttendanceRepository persists per-day attendance records. Create
// must fail with ErrAlreadyCheckedIn when a row already exists for the
// same (employee, date) so that concurrent check-ins collapse to one.
type AttendanceRepository interface {
	Create(ctx context.Context, day *AttendanceDay) error
	Update(ctx context.Context, day *AttendanceDay) error
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceDay, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceDay, error)
	// ListOpenByDate returns days with a check-in and no check-out.
	ListOpenByDate(ctx context.Context, date time.Time) ([]AttendanceDay, error)
}

// CheckLogRepository is the append-only audit trail of check attempts.
type CheckLogRepository interface {
	Append(ctx context.Context, log *CheckLog) error
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]CheckLog, error)
}
