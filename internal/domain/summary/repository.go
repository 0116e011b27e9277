package summary

import "context"

type SummaryRepository interface {
	// Upsert inserts or overwrites the summary keyed by
	// (employee, month, year).
	Upsert(ctx context.Context, s *MonthlySummary) error
	GetByEmployeeMonthYear(ctx context.Context, employeeID string, month, year int) (*MonthlySummary, error)
	ListByMonth(ctx context.Context, month, year int) ([]MonthlySummary, error)
	Finalize(ctx context.Context, id, finalizedBy string) error
}
