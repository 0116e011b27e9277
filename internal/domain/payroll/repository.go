package payroll

import "context"

// PayrollRepository persists payroll records and their deduction
// lines. Replace must delete the existing lines before rewriting the
// record and inserting the new ones, all in one transaction.
type PayrollRepository interface {
	Replace(ctx context.Context, rec *PayrollRecord) error
	GetByEmployeeMonthYear(ctx context.Context, employeeID string, month, year int) (*PayrollRecord, error)
	ListByMonth(ctx context.Context, month, year int) ([]PayrollRecord, error)
	MarkProcessed(ctx context.Context, id, processedBy string) error
	// Delete removes the record and its deduction lines. Callers wrap
	// this in WithTransaction.
	Delete(ctx context.Context, id string) error
}
