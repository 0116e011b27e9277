package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sumit123-456/backend-project/internal/domain/employee"
	"github.com/sumit123-456/backend-project/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.full_name, e.email, e.password_hash, e.role,
	e.team_leader_id, e.designation, e.department, e.base_salary,
	e.join_date, e.is_active, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeCode,
		&e.FullName,
		&e.Email,
		&e.PasswordHash,
		&e.Role,
		&e.TeamLeaderID,
		&e.Designation,
		&e.Department,
		&e.BaseSalary,
		&e.JoinDate,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (
			id, employee_code, full_name, email, password_hash, role,
			team_leader_id, designation, department, base_salary,
			join_date, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.EmployeeCode, e.FullName, e.Email, e.PasswordHash, e.Role,
		e.TeamLeaderID, e.Designation, e.Department, e.BaseSalary,
		e.JoinDate, e.IsActive,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "employees_employee_code_key":
				return employee.ErrEmployeeCodeExists
			case "employees_email_key":
				return employee.ErrEmailExists
			}
			return employee.ErrEmployeeCodeExists
		}
		return err
	}
	return nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, employee.ErrEmployeeNotFound
	}
	return e, err
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.email = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, employee.ErrEmployeeNotFound
	}
	return e, err
}

func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.employee_code = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, employee.ErrEmployeeNotFound
	}
	return e, err
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			full_name = $2,
			team_leader_id = $3,
			designation = $4,
			department = $5,
			base_salary = $6,
			password_hash = $7,
			is_active = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		e.ID, e.FullName, e.TeamLeaderID, e.Designation, e.Department,
		e.BaseSalary, e.PasswordHash, e.IsActive,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Role != nil {
		where += fmt.Sprintf(" AND e.role = $%d", argPos)
		args = append(args, *filter.Role)
		argPos++
	}
	if filter.Department != nil {
		where += fmt.Sprintf(" AND e.department = $%d", argPos)
		args = append(args, *filter.Department)
		argPos++
	}
	if filter.Search != nil {
		where += fmt.Sprintf(" AND (e.full_name ILIKE $%d OR e.employee_code ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + employeeColumns + ` FROM employees e ` + where +
		fmt.Sprintf(" ORDER BY e.employee_code LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, *e)
	}

	return employees, total, rows.Err()
}

func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.is_active ORDER BY e.employee_code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) ListByTeamLeader(ctx context.Context, teamLeaderID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.team_leader_id = $1 AND e.is_active ORDER BY e.employee_code`

	rows, err := q.Query(ctx, query, teamLeaderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}

	return employees, rows.Err()
}
