package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sumit123-456/backend-project/internal/domain/summary"
	"github.com/sumit123-456/backend-project/internal/pkg/database"
)

type summaryRepositoryImpl struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) summary.SummaryRepository {
	return &summaryRepositoryImpl{db: db}
}

const summaryColumns = `
	s.id, s.employee_id, s.month, s.year,
	s.present_days, s.absent_days, s.half_days, s.late_days, s.early_departures,
	s.leave_days, s.paid_leave_days, s.unpaid_leave_days,
	s.holiday_days, s.weekend_days, s.remote_days, s.total_late_minutes,
	s.worked_hours, s.overtime_hours,
	s.is_finalized, s.finalized_at, s.finalized_by, s.created_at, s.updated_at
`

func scanSummary(row pgx.Row) (*summary.MonthlySummary, error) {
	var s summary.MonthlySummary
	err := row.Scan(
		&s.ID,
		&s.EmployeeID,
		&s.Month,
		&s.Year,
		&s.PresentDays,
		&s.AbsentDays,
		&s.HalfDays,
		&s.LateDays,
		&s.EarlyDepartures,
		&s.LeaveDays,
		&s.PaidLeaveDays,
		&s.UnpaidLeaveDays,
		&s.HolidayDays,
		&s.WeekendDays,
		&s.RemoteDays,
		&s.TotalLateMinutes,
		&s.WorkedHours,
		&s.OvertimeHours,
		&s.IsFinalized,
		&s.FinalizedAt,
		&s.FinalizedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *summaryRepositoryImpl) Upsert(ctx context.Context, s *summary.MonthlySummary) error {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO monthly_summaries (
			id, employee_id, month, year,
			present_days, absent_days, half_days, late_days, early_departures,
			leave_days, paid_leave_days, unpaid_leave_days,
			holiday_days, weekend_days, remote_days, total_late_minutes,
			worked_hours, overtime_hours, is_finalized, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			$10, $11, $12,
			$13, $14, $15, $16,
			$17, $18, FALSE, NOW(), NOW()
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			present_days = EXCLUDED.present_days,
			absent_days = EXCLUDED.absent_days,
			half_days = EXCLUDED.half_days,
			late_days = EXCLUDED.late_days,
			early_departures = EXCLUDED.early_departures,
			leave_days = EXCLUDED.leave_days,
			paid_leave_days = EXCLUDED.paid_leave_days,
			unpaid_leave_days = EXCLUDED.unpaid_leave_days,
			holiday_days = EXCLUDED.holiday_days,
			weekend_days = EXCLUDED.weekend_days,
			remote_days = EXCLUDED.remote_days,
			total_late_minutes = EXCLUDED.total_late_minutes,
			worked_hours = EXCLUDED.worked_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			updated_at = NOW()
		WHERE monthly_summaries.is_finalized = FALSE
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.EmployeeID, s.Month, s.Year,
		s.PresentDays, s.AbsentDays, s.HalfDays, s.LateDays, s.EarlyDepartures,
		s.LeaveDays, s.PaidLeaveDays, s.UnpaidLeaveDays,
		s.HolidayDays, s.WeekendDays, s.RemoteDays, s.TotalLateMinutes,
		s.WorkedHours, s.OvertimeHours,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// conflict hit a finalized row, the WHERE guard filtered it out
		return summary.ErrSummaryFinalized
	}
	return err
}

func (r *summaryRepositoryImpl) GetByEmployeeMonthYear(ctx context.Context, employeeID string, month, year int) (*summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + summaryColumns + ` FROM monthly_summaries s WHERE s.employee_id = $1 AND s.month = $2 AND s.year = $3`

	s, err := scanSummary(q.QueryRow(ctx, query, employeeID, month, year))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, summary.ErrSummaryNotFound
	}
	return s, err
}

func (r *summaryRepositoryImpl) ListByMonth(ctx context.Context, month, year int) ([]summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM monthly_summaries s
		WHERE s.month = $1 AND s.year = $2
		ORDER BY s.employee_id
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []summary.MonthlySummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *s)
	}

	return summaries, rows.Err()
}

func (r *summaryRepositoryImpl) Finalize(ctx context.Context, id, finalizedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_summaries SET
			is_finalized = TRUE,
			finalized_at = NOW(),
			finalized_by = $2,
			updated_at = NOW()
		WHERE id = $1 AND is_finalized = FALSE
	`

	commandTag, err := q.Exec(ctx, query, id, finalizedBy)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return summary.ErrSummaryFinalized
	}
	return nil
}
