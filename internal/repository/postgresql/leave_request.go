package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sumit123-456/backend-project/internal/domain/leave"
	"github.com/sumit123-456/backend-project/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	lr.id, lr.employee_id, lr.type, lr.start_date, lr.end_date, lr.total_days,
	lr.reason, lr.status, lr.tl_reviewed_by, lr.tl_reviewed_at,
	lr.hr_reviewed_by, lr.hr_reviewed_at, lr.rejection_reason,
	lr.created_at, lr.updated_at
`

func scanLeave(row pgx.Row) (*leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.Type,
		&lr.StartDate,
		&lr.EndDate,
		&lr.TotalDays,
		&lr.Reason,
		&lr.Status,
		&lr.TLReviewedBy,
		&lr.TLReviewedAt,
		&lr.HRReviewedBy,
		&lr.HRReviewedAt,
		&lr.RejectionReason,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, lr *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	if lr.ID == "" {
		lr.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, type, start_date, end_date, total_days,
			reason, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		lr.ID, lr.EmployeeID, lr.Type, lr.StartDate, lr.EndDate, lr.TotalDays,
		lr.Reason, lr.Status,
	).Scan(&lr.CreatedAt, &lr.UpdatedAt)
}

func (r *leaveRepositoryImpl) Update(ctx context.Context, lr *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests SET
			status = $2,
			tl_reviewed_by = $3,
			tl_reviewed_at = $4,
			hr_reviewed_by = $5,
			hr_reviewed_at = $6,
			rejection_reason = $7,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		lr.ID, lr.Status, lr.TLReviewedBy, lr.TLReviewedAt,
		lr.HRReviewedBy, lr.HRReviewedAt, lr.RejectionReason,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests lr WHERE lr.id = $1`

	lr, err := scanLeave(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, leave.ErrLeaveNotFound
	}
	return lr, err
}

func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND lr.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND lr.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests lr ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + leaveColumns + ` FROM leave_requests lr ` + where +
		fmt.Sprintf(" ORDER BY lr.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeave(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, *lr)
	}

	return requests, total, rows.Err()
}

func (r *leaveRepositoryImpl) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		  AND lr.status = 'approved'
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		ORDER BY lr.start_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *lr)
	}

	return requests, rows.Err()
}

func (r *leaveRepositoryImpl) CountActiveOverlapping(ctx context.Context, employeeID string, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		  AND lr.status IN ('pending', 'tl_approved', 'approved')
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
	`

	var count int64
	err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&count)
	return count, err
}

func (r *leaveRepositoryImpl) ListByStatusAndEmployees(ctx context.Context, status leave.Status, employeeIDs []string) ([]leave.LeaveRequest, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		WHERE lr.status = $1 AND lr.employee_id = ANY($2)
		ORDER BY lr.created_at
	`

	rows, err := q.Query(ctx, query, status, employeeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *lr)
	}

	return requests, rows.Err()
}

func (r *leaveRepositoryImpl) ListByStatus(ctx context.Context, status leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		WHERE lr.status = $1
		ORDER BY lr.created_at
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *lr)
	}

	return requests, rows.Err()
}
