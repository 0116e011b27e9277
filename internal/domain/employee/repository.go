package employee

import "context"

// EmployeeRepository abstracts employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	GetByCode(ctx context.Context, code string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	ListActive(ctx context.Context) ([]Employee, error)
	ListByTeamLeader(ctx context.Context, teamLeaderID string) ([]Employee, error)
}
