package postgresql

import (
	"context"

	"github.com/google/uuid"

	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/pkg/database"
)

type checkLogRepositoryImpl struct {
	db *database.DB
}

func NewCheckLogRepository(db *database.DB) attendance.CheckLogRepository {
	return &checkLogRepositoryImpl{db: db}
}

func (r *checkLogRepositoryImpl) Append(ctx context.Context, log *attendance.CheckLog) error {
	q := GetQuerier(ctx, r.db)

	if log.ID == "" {
		log.ID = uuid.NewString()
	}

	query := `
		INSERT INTO check_logs (id, employee_id, action, outcome, reason, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	return q.QueryRow(ctx, query,
		log.ID, log.EmployeeID, log.Action, log.Outcome, log.Reason, log.OccurredAt,
	).Scan(&log.CreatedAt)
}

func (r *checkLogRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]attendance.CheckLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, action, outcome, reason, occurred_at, created_at
		FROM check_logs
		WHERE employee_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []attendance.CheckLog
	for rows.Next() {
		var l attendance.CheckLog
		err := rows.Scan(&l.ID, &l.EmployeeID, &l.Action, &l.Outcome, &l.Reason, &l.OccurredAt, &l.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
