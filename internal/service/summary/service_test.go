package summary

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/domain/employee"
	"github.com/sumit123-456/backend-project/internal/domain/leave"
	"github.com/sumit123-456/backend-project/internal/domain/summary"
)

type fakeSummaryRepo struct {
	summaries map[string]*summary.MonthlySummary
}

func summaryKey(employeeID string, month, year int) string {
	return employeeID + "|" + time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (f *fakeSummaryRepo) Upsert(_ context.Context, s *summary.MonthlySummary) error {
	key := summaryKey(s.EmployeeID, s.Month, s.Year)
	if existing, ok := f.summaries[key]; ok {
		if existing.IsFinalized {
			return summary.ErrSummaryFinalized
		}
		s.ID = existing.ID
	} else {
		s.ID = key
	}
	cp := *s
	f.summaries[key] = &cp
	return nil
}

func (f *fakeSummaryRepo) GetByEmployeeMonthYear(_ context.Context, employeeID string, month, year int) (*summary.MonthlySummary, error) {
	if s, ok := f.summaries[summaryKey(employeeID, month, year)]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, summary.ErrSummaryNotFound
}

func (f *fakeSummaryRepo) ListByMonth(_ context.Context, month, year int) ([]summary.MonthlySummary, error) {
	var out []summary.MonthlySummary
	for _, s := range f.summaries {
		if s.Month == month && s.Year == year {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSummaryRepo) Finalize(_ context.Context, id, finalizedBy string) error {
	for _, s := range f.summaries {
		if s.ID == id {
			if s.IsFinalized {
				return summary.ErrSummaryFinalized
			}
			now := time.Now()
			s.IsFinalized = true
			s.FinalizedAt = &now
			s.FinalizedBy = &finalizedBy
			return nil
		}
	}
	return summary.ErrSummaryNotFound
}

type fakeAttendanceRepo struct {
	days []attendance.AttendanceDay
}

func (f *fakeAttendanceRepo) Create(_ context.Context, _ *attendance.AttendanceDay) error { return nil }
func (f *fakeAttendanceRepo) Update(_ context.Context, _ *attendance.AttendanceDay) error { return nil }
func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*attendance.AttendanceDay, error) {
	return nil, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceDay, error) {
	var out []attendance.AttendanceDay
	for _, d := range f.days {
		if d.EmployeeID == employeeID && !d.Date.Before(from) && !d.Date.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListOpenByDate(_ context.Context, _ time.Time) ([]attendance.AttendanceDay, error) {
	return nil, nil
}

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRepo) Create(_ context.Context, _ *leave.LeaveRequest) error { return nil }
func (f *fakeLeaveRepo) Update(_ context.Context, _ *leave.LeaveRequest) error { return nil }
func (f *fakeLeaveRepo) GetByID(_ context.Context, _ string) (*leave.LeaveRequest, error) {
	return nil, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) List(_ context.Context, _ leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(_ context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range f.requests {
		if lr.EmployeeID == employeeID && lr.Status == leave.StatusApproved && lr.Overlap(from, to) > 0 {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) CountActiveOverlapping(_ context.Context, _ string, _, _ time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeLeaveRepo) ListByStatusAndEmployees(_ context.Context, _ leave.Status, _ []string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListByStatus(_ context.Context, _ leave.Status) ([]leave.LeaveRequest, error) {
	return nil, nil
}

type fakeEmployeeRepo struct{}

func (fakeEmployeeRepo) Create(_ context.Context, _ *employee.Employee) error { return nil }
func (fakeEmployeeRepo) GetByID(_ context.Context, id string) (*employee.Employee, error) {
	if id == "emp-1" {
		return &employee.Employee{ID: "emp-1", IsActive: true}, nil
	}
	return nil, employee.ErrEmployeeNotFound
}

func (fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}

func (fakeEmployeeRepo) GetByCode(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}
func (fakeEmployeeRepo) Update(_ context.Context, _ *employee.Employee) error { return nil }
func (fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}
func (fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) { return nil, nil }
func (fakeEmployeeRepo) ListByTeamLeader(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func day(d int, status attendance.Status, worked float64) attendance.AttendanceDay {
	return attendance.AttendanceDay{
		EmployeeID:  "emp-1",
		Date:        time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC),
		Status:      status,
		WorkedHours: decimal.NewFromFloat(worked),
	}
}

func newService(days []attendance.AttendanceDay, leaves []leave.LeaveRequest) (summary.SummaryService, *fakeSummaryRepo) {
	summaries := &fakeSummaryRepo{summaries: make(map[string]*summary.MonthlySummary)}
	svc := NewSummaryService(
		summaries,
		&fakeAttendanceRepo{days: days},
		&fakeLeaveRepo{requests: leaves},
		fakeEmployeeRepo{},
		8.0,
	)
	return svc, summaries
}

func TestGenerateAggregatesMonth(t *testing.T) {
	svc, _ := newService([]attendance.AttendanceDay{
		day(2, attendance.StatusPresent, 8.0),
		day(3, attendance.StatusLate, 8.5),
		day(4, attendance.StatusAbsent, 0),
		// outside the target month
		{EmployeeID: "emp-1", Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent, WorkedHours: decimal.NewFromInt(8)},
	}, nil)

	resp, err := svc.Generate(context.Background(), summary.GenerateSummaryRequest{
		EmployeeID: "emp-1", Month: 3, Year: 2026,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.PresentDays)
	assert.Equal(t, 1, resp.LateDays)
	assert.Equal(t, 1, resp.AbsentDays)
	assert.True(t, resp.WorkedHours.Equal(decimal.NewFromFloat(16.5)))
	assert.True(t, resp.OvertimeHours.Equal(decimal.NewFromFloat(0.5)))
	assert.False(t, resp.IsFinalized)
}

func TestGenerateIsIdempotent(t *testing.T) {
	svc, _ := newService([]attendance.AttendanceDay{
		day(2, attendance.StatusPresent, 8.0),
	}, nil)

	req := summary.GenerateSummaryRequest{EmployeeID: "emp-1", Month: 3, Year: 2026}

	first, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateRefusedAfterFinalize(t *testing.T) {
	svc, _ := newService([]attendance.AttendanceDay{
		day(2, attendance.StatusPresent, 8.0),
	}, nil)

	req := summary.GenerateSummaryRequest{EmployeeID: "emp-1", Month: 3, Year: 2026}
	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	finalized, err := svc.Finalize(context.Background(), summary.FinalizeSummaryRequest{
		EmployeeID: "emp-1", Month: 3, Year: 2026, FinalizedBy: "hr-1",
	})
	require.NoError(t, err)
	assert.True(t, finalized.IsFinalized)

	_, err = svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, summary.ErrSummaryFinalized)

	_, err = svc.Finalize(context.Background(), summary.FinalizeSummaryRequest{
		EmployeeID: "emp-1", Month: 3, Year: 2026, FinalizedBy: "hr-1",
	})
	assert.ErrorIs(t, err, summary.ErrSummaryFinalized)
}

func TestGenerateUnknownEmployee(t *testing.T) {
	svc, _ := newService(nil, nil)

	_, err := svc.Generate(context.Background(), summary.GenerateSummaryRequest{
		EmployeeID: "ghost", Month: 3, Year: 2026,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGenerateIncludesUnpaidLeave(t *testing.T) {
	svc, _ := newService(nil, []leave.LeaveRequest{
		{
			EmployeeID: "emp-1",
			Type:       leave.TypeUnpaid,
			Status:     leave.StatusApproved,
			StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		},
	})

	resp, err := svc.Generate(context.Background(), summary.GenerateSummaryRequest{
		EmployeeID: "emp-1", Month: 3, Year: 2026,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.UnpaidLeaveDays)
	assert.Zero(t, resp.PaidLeaveDays)
}
