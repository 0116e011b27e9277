package payroll

import (
	"context"
	"errors"

	"github.com/sumit123-456/backend-project/internal/domain/employee"
	"github.com/sumit123-456/backend-project/internal/domain/payroll"
	"github.com/sumit123-456/backend-project/internal/domain/summary"
	"github.com/sumit123-456/backend-project/internal/pkg/database"
	"github.com/sumit123-456/backend-project/internal/repository/postgresql"
)

type payrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	summaryRepo  summary.SummaryRepository
	employeeRepo employee.EmployeeRepository
	rates        payroll.Rates
	runInTx      func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	summaryRepo summary.SummaryRepository,
	employeeRepo employee.EmployeeRepository,
	rates payroll.Rates,
	db *database.DB,
) payroll.PayrollService {
	return &payrollServiceImpl{
		payrollRepo:  payrollRepo,
		summaryRepo:  summaryRepo,
		employeeRepo: employeeRepo,
		rates:        rates,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *payrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	existing, err := s.payrollRepo.GetByEmployeeMonthYear(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil && !errors.Is(err, payroll.ErrPayrollNotFound) {
		return payroll.PayrollResponse{}, err
	}
	if existing != nil && existing.IsProcessed {
		return payroll.PayrollResponse{}, payroll.ErrPayrollProcessed
	}

	sm, err := s.summaryRepo.GetByEmployeeMonthYear(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec := payroll.Calculate(emp.BaseSalary, req.Allowances, req.Overtime, payroll.Counts{
		HalfDays:        sm.HalfDays,
		AbsentDays:      sm.AbsentDays,
		UnpaidLeaveDays: sm.UnpaidLeaveDays,
		LateArrivals:    sm.LateDays,
	}, s.rates)
	rec.EmployeeID = req.EmployeeID
	rec.Month = req.Month
	rec.Year = req.Year
	if existing != nil {
		rec.ID = existing.ID
	}

	// the record and its lines are rewritten together
	err = s.runInTx(ctx, func(txCtx context.Context) error {
		return s.payrollRepo.Replace(txCtx, &rec)
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toPayrollResponse(&rec), nil
}

func (s *payrollServiceImpl) Get(ctx context.Context, employeeID string, month, year int) (payroll.PayrollResponse, error) {
	rec, err := s.payrollRepo.GetByEmployeeMonthYear(ctx, employeeID, month, year)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toPayrollResponse(rec), nil
}

func (s *payrollServiceImpl) ListByMonth(ctx context.Context, month, year int) ([]payroll.PayrollResponse, error) {
	records, err := s.payrollRepo.ListByMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toPayrollResponse(&records[i]))
	}
	return responses, nil
}

func (s *payrollServiceImpl) Process(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := s.payrollRepo.GetByEmployeeMonthYear(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if rec.IsProcessed {
		return payroll.PayrollResponse{}, payroll.ErrPayrollProcessed
	}

	if err := s.payrollRepo.MarkProcessed(ctx, rec.ID, req.ProcessedBy); err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err = s.payrollRepo.GetByEmployeeMonthYear(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toPayrollResponse(rec), nil
}

func (s *payrollServiceImpl) Delete(ctx context.Context, employeeID string, month, year int) error {
	rec, err := s.payrollRepo.GetByEmployeeMonthYear(ctx, employeeID, month, year)
	if err != nil {
		return err
	}
	if rec.IsProcessed {
		return payroll.ErrPayrollProcessed
	}

	return s.runInTx(ctx, func(txCtx context.Context) error {
		return s.payrollRepo.Delete(txCtx, rec.ID)
	})
}

func toPayrollResponse(rec *payroll.PayrollRecord) payroll.PayrollResponse {
	lines := make([]payroll.DeductionLineResponse, 0, len(rec.Lines))
	for _, l := range rec.Lines {
		lines = append(lines, payroll.DeductionLineResponse{
			Category: l.Category,
			Quantity: l.Quantity,
			Amount:   l.Amount,
		})
	}

	return payroll.PayrollResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		EmployeeName:    rec.EmployeeName,
		EmployeeCode:    rec.EmployeeCode,
		Month:           rec.Month,
		Year:            rec.Year,
		BaseSalary:      rec.BaseSalary,
		Allowances:      rec.Allowances,
		OvertimePay:     rec.OvertimePay,
		GrossSalary:     rec.GrossSalary,
		TotalDeductions: rec.TotalDeductions,
		NetSalary:       rec.NetSalary,
		IsProcessed:     rec.IsProcessed,
		ProcessedAt:     rec.ProcessedAt,
		Lines:           lines,
	}
}
