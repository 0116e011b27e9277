package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sumit123-456/backend-project/internal/domain/payroll"
	"github.com/sumit123-456/backend-project/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.month, p.year,
	p.base_salary, p.allowances, p.overtime_pay,
	p.gross_salary, p.total_deductions, p.net_salary,
	p.is_processed, p.processed_at, p.processed_by, p.created_at, p.updated_at
`

func scanPayroll(row pgx.Row) (*payroll.PayrollRecord, error) {
	var p payroll.PayrollRecord
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.Month,
		&p.Year,
		&p.BaseSalary,
		&p.Allowances,
		&p.OvertimePay,
		&p.GrossSalary,
		&p.TotalDeductions,
		&p.NetSalary,
		&p.IsProcessed,
		&p.ProcessedAt,
		&p.ProcessedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Replace upserts the payroll row and rewrites its deduction lines.
// Line deletion happens before the parent rewrite so a recalculation
// never merges old and new lines. Callers wrap this in WithTransaction.
func (r *payrollRepositoryImpl) Replace(ctx context.Context, rec *payroll.PayrollRecord) error {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	deleteLines := `
		DELETE FROM payroll_deduction_lines
		WHERE payroll_id = (
			SELECT id FROM payroll_records
			WHERE employee_id = $1 AND month = $2 AND year = $3
		)
	`
	if _, err := q.Exec(ctx, deleteLines, rec.EmployeeID, rec.Month, rec.Year); err != nil {
		return err
	}

	upsert := `
		INSERT INTO payroll_records (
			id, employee_id, month, year,
			base_salary, allowances, overtime_pay,
			gross_salary, total_deductions, net_salary,
			is_processed, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10,
			FALSE, NOW(), NOW()
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			allowances = EXCLUDED.allowances,
			overtime_pay = EXCLUDED.overtime_pay,
			gross_salary = EXCLUDED.gross_salary,
			total_deductions = EXCLUDED.total_deductions,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
		WHERE payroll_records.is_processed = FALSE
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, upsert,
		rec.ID, rec.EmployeeID, rec.Month, rec.Year,
		rec.BaseSalary, rec.Allowances, rec.OvertimePay,
		rec.GrossSalary, rec.TotalDeductions, rec.NetSalary,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.ErrPayrollProcessed
	}
	if err != nil {
		return err
	}

	insertLine := `
		INSERT INTO payroll_deduction_lines (id, payroll_id, category, quantity, amount)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i := range rec.Lines {
		line := &rec.Lines[i]
		line.ID = uuid.NewString()
		line.PayrollID = rec.ID
		if _, err := q.Exec(ctx, insertLine, line.ID, line.PayrollID, line.Category, line.Quantity, line.Amount); err != nil {
			return err
		}
	}

	return nil
}

func (r *payrollRepositoryImpl) GetByEmployeeMonthYear(ctx context.Context, employeeID string, month, year int) (*payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records p WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3`

	rec, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month, year))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, payroll.ErrPayrollNotFound
	}
	if err != nil {
		return nil, err
	}

	rec.Lines, err = r.listLines(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *payrollRepositoryImpl) listLines(ctx context.Context, payrollID string) ([]payroll.DeductionLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, category, quantity, amount
		FROM payroll_deduction_lines
		WHERE payroll_id = $1
		ORDER BY category
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []payroll.DeductionLine
	for rows.Next() {
		var l payroll.DeductionLine
		if err := rows.Scan(&l.ID, &l.PayrollID, &l.Category, &l.Quantity, &l.Amount); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

func (r *payrollRepositoryImpl) ListByMonth(ctx context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		WHERE p.month = $1 AND p.year = $2
		ORDER BY p.employee_id
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range records {
		records[i].Lines, err = r.listLines(ctx, records[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return records, nil
}

func (r *payrollRepositoryImpl) MarkProcessed(ctx context.Context, id, processedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records SET
			is_processed = TRUE,
			processed_at = NOW(),
			processed_by = $2,
			updated_at = NOW()
		WHERE id = $1 AND is_processed = FALSE
	`

	commandTag, err := q.Exec(ctx, query, id, processedBy)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return payroll.ErrPayrollProcessed
	}
	return nil
}

func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_deduction_lines WHERE payroll_id = $1`, id); err != nil {
		return err
	}

	commandTag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}
