package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
	a.status, a.worked_hours, a.late_minutes, a.remarks, a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (*attendance.AttendanceDay, error) {
	var d attendance.AttendanceDay
	err := row.Scan(
		&d.ID,
		&d.EmployeeID,
		&d.Date,
		&d.CheckInTime,
		&d.CheckOutTime,
		&d.Status,
		&d.WorkedHours,
		&d.LateMinutes,
		&d.Remarks,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new day. The unique (employee_id, date) constraint
// turns a concurrent double check-in into ErrAlreadyCheckedIn for the
// loser, so the existence pre-check in the service is not load-bearing.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, day *attendance.AttendanceDay) error {
	q := GetQuerier(ctx, r.db)

	if day.ID == "" {
		day.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_days (
			id, employee_id, date, check_in_time, check_out_time,
			status, worked_hours, late_minutes, remarks, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		day.ID, day.EmployeeID, day.Date, day.CheckInTime, day.CheckOutTime,
		day.Status, day.WorkedHours, day.LateMinutes, day.Remarks,
	).Scan(&day.CreatedAt, &day.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrAlreadyCheckedIn
		}
		return err
	}
	return nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, day *attendance.AttendanceDay) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_days SET
			check_in_time = $2,
			check_out_time = $3,
			status = $4,
			worked_hours = $5,
			late_minutes = $6,
			remarks = $7,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		day.ID, day.CheckInTime, day.CheckOutTime, day.Status,
		day.WorkedHours, day.LateMinutes, day.Remarks,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_days a WHERE a.employee_id = $1 AND a.date = $2`

	d, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, attendance.ErrAttendanceNotFound
	}
	return d, err
}

func (r *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days a
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []attendance.AttendanceDay
	for rows.Next() {
		d, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, *d)
	}

	return days, rows.Err()
}

func (r *attendanceRepositoryImpl) ListOpenByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days a
		WHERE a.date = $1 AND a.check_in_time IS NOT NULL AND a.check_out_time IS NULL
		ORDER BY a.employee_id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []attendance.AttendanceDay
	for rows.Next() {
		d, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, *d)
	}

	return days, rows.Err()
}
