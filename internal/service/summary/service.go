package summary

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/domain/employee"
	"github.com/sumit123-456/backend-project/internal/domain/leave"
	"github.com/sumit123-456/backend-project/internal/domain/summary"
)

type summaryServiceImpl struct {
	summaryRepo    summary.SummaryRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	employeeRepo   employee.EmployeeRepository
	requiredHours  decimal.Decimal
}

func NewSummaryService(
	summaryRepo summary.SummaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	requiredHours float64,
) summary.SummaryService {
	return &summaryServiceImpl{
		summaryRepo:    summaryRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		requiredHours:  decimal.NewFromFloat(requiredHours),
	}
}

func monthRange(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, -1)
}

func (s *summaryServiceImpl) Generate(ctx context.Context, req summary.GenerateSummaryRequest) (summary.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.SummaryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return summary.SummaryResponse{}, err
	}

	existing, err := s.summaryRepo.GetByEmployeeMonthYear(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil && !errors.Is(err, summary.ErrSummaryNotFound) {
		return summary.SummaryResponse{}, err
	}
	if existing != nil && existing.IsFinalized {
		return summary.SummaryResponse{}, summary.ErrSummaryFinalized
	}

	from, to := monthRange(req.Month, req.Year)

	days, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, req.EmployeeID, from, to)
	if err != nil {
		return summary.SummaryResponse{}, err
	}
	approved, err := s.leaveRepo.ListApprovedOverlapping(ctx, req.EmployeeID, from, to)
	if err != nil {
		return summary.SummaryResponse{}, err
	}

	result := summary.Aggregate(req.EmployeeID, req.Month, req.Year, days, approved, s.requiredHours)
	if existing != nil {
		result.ID = existing.ID
	}

	if err := s.summaryRepo.Upsert(ctx, &result); err != nil {
		return summary.SummaryResponse{}, err
	}

	return toSummaryResponse(&result), nil
}

func (s *summaryServiceImpl) Get(ctx context.Context, employeeID string, month, year int) (summary.SummaryResponse, error) {
	sm, err := s.summaryRepo.GetByEmployeeMonthYear(ctx, employeeID, month, year)
	if err != nil {
		return summary.SummaryResponse{}, err
	}
	return toSummaryResponse(sm), nil
}

func (s *summaryServiceImpl) ListByMonth(ctx context.Context, month, year int) ([]summary.SummaryResponse, error) {
	summaries, err := s.summaryRepo.ListByMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]summary.SummaryResponse, 0, len(summaries))
	for i := range summaries {
		responses = append(responses, toSummaryResponse(&summaries[i]))
	}
	return responses, nil
}

func (s *summaryServiceImpl) Finalize(ctx context.Context, req summary.FinalizeSummaryRequest) (summary.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.SummaryResponse{}, err
	}

	sm, err := s.summaryRepo.GetByEmployeeMonthYear(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return summary.SummaryResponse{}, err
	}
	if sm.IsFinalized {
		return summary.SummaryResponse{}, summary.ErrSummaryFinalized
	}

	if err := s.summaryRepo.Finalize(ctx, sm.ID, req.FinalizedBy); err != nil {
		return summary.SummaryResponse{}, err
	}

	sm, err = s.summaryRepo.GetByEmployeeMonthYear(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return summary.SummaryResponse{}, err
	}
	return toSummaryResponse(sm), nil
}

func toSummaryResponse(sm *summary.MonthlySummary) summary.SummaryResponse {
	return summary.SummaryResponse{
		ID:               sm.ID,
		EmployeeID:       sm.EmployeeID,
		EmployeeName:     sm.EmployeeName,
		EmployeeCode:     sm.EmployeeCode,
		Month:            sm.Month,
		Year:             sm.Year,
		PresentDays:      sm.PresentDays,
		AbsentDays:       sm.AbsentDays,
		HalfDays:         sm.HalfDays,
		LateDays:         sm.LateDays,
		EarlyDepartures:  sm.EarlyDepartures,
		LeaveDays:        sm.LeaveDays,
		PaidLeaveDays:    sm.PaidLeaveDays,
		UnpaidLeaveDays:  sm.UnpaidLeaveDays,
		HolidayDays:      sm.HolidayDays,
		WeekendDays:      sm.WeekendDays,
		RemoteDays:       sm.RemoteDays,
		TotalLateMinutes: sm.TotalLateMinutes,
		WorkedHours:      sm.WorkedHours,
		OvertimeHours:    sm.OvertimeHours,
		IsFinalized:      sm.IsFinalized,
		FinalizedAt:      sm.FinalizedAt,
	}
}
