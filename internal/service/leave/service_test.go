package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/domain/employee"
	"github.com/sumit123-456/backend-project/internal/domain/leave"
)

type fakeLeaveRepo struct {
	requests map[string]*leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]*leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, lr *leave.LeaveRequest) error {
	f.nextID++
	lr.ID = fmt.Sprintf("leave-%d", f.nextID)
	cp := *lr
	f.requests[lr.ID] = &cp
	return nil
}

func (f *fakeLeaveRepo) Update(_ context.Context, lr *leave.LeaveRequest) error {
	if _, ok := f.requests[lr.ID]; !ok {
		return leave.ErrLeaveNotFound
	}
	cp := *lr
	f.requests[lr.ID] = &cp
	return nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (*leave.LeaveRequest, error) {
	if lr, ok := f.requests[id]; ok {
		cp := *lr
		return &cp, nil
	}
	return nil, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) List(_ context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, lr := range f.requests {
		if filter.EmployeeID != nil && lr.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(lr.Status) != *filter.Status {
			continue
		}
		out = append(out, *lr)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(_ context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range f.requests {
		if lr.EmployeeID == employeeID && lr.Status == leave.StatusApproved && lr.Overlap(from, to) > 0 {
			out = append(out, *lr)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) CountActiveOverlapping(_ context.Context, employeeID string, from, to time.Time) (int64, error) {
	var count int64
	for _, lr := range f.requests {
		switch lr.Status {
		case leave.StatusPending, leave.StatusTLApproved, leave.StatusApproved:
		default:
			continue
		}
		if lr.EmployeeID == employeeID && lr.Overlap(from, to) > 0 {
			count++
		}
	}
	return count, nil
}

func (f *fakeLeaveRepo) ListByStatusAndEmployees(_ context.Context, status leave.Status, employeeIDs []string) ([]leave.LeaveRequest, error) {
	ids := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = true
	}
	var out []leave.LeaveRequest
	for _, lr := range f.requests {
		if lr.Status == status && ids[lr.EmployeeID] {
			out = append(out, *lr)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByStatus(_ context.Context, status leave.Status) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range f.requests {
		if lr.Status == status {
			out = append(out, *lr)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListByTeamLeader(_ context.Context, teamLeaderID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.TeamLeaderID != nil && *e.TeamLeaderID == teamLeaderID {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	days map[string]*attendance.AttendanceDay
}

func (f *fakeAttendanceRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, day *attendance.AttendanceDay) error {
	day.ID = f.key(day.EmployeeID, day.Date)
	cp := *day
	f.days[day.ID] = &cp
	return nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, day *attendance.AttendanceDay) error {
	cp := *day
	f.days[day.ID] = &cp
	return nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.AttendanceDay, error) {
	if day, ok := f.days[f.key(employeeID, date)]; ok {
		cp := *day
		return &cp, nil
	}
	return nil, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, _ string, _, _ time.Time) ([]attendance.AttendanceDay, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListOpenByDate(_ context.Context, _ time.Time) ([]attendance.AttendanceDay, error) {
	return nil, nil
}

type fixture struct {
	svc        *leaveServiceImpl
	leaves     *fakeLeaveRepo
	attendance *fakeAttendanceRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	policy, err := attendance.NewWorkdayPolicy("10:00", "10:50", "10:45", "18:20", "18:30", 8.0, 4.0)
	require.NoError(t, err)

	tlID := "tl-1"
	employees := &fakeEmployeeRepo{employees: map[string]*employee.Employee{
		"emp-1": {ID: "emp-1", Role: employee.RoleEmployee, TeamLeaderID: &tlID, IsActive: true},
		"tl-1":  {ID: "tl-1", Role: employee.RoleTeamLeader, IsActive: true},
		"hr-1":  {ID: "hr-1", Role: employee.RoleHR, IsActive: true},
	}}

	leaves := newFakeLeaveRepo()
	attendanceRepo := &fakeAttendanceRepo{days: make(map[string]*attendance.AttendanceDay)}

	return &fixture{
		svc: &leaveServiceImpl{
			leaveRepo:      leaves,
			employeeRepo:   employees,
			attendanceRepo: attendanceRepo,
			policy:         policy,
			runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			},
		},
		leaves:     leaves,
		attendance: attendanceRepo,
	}
}

func submit(t *testing.T, f *fixture, leaveType, start, end string) leave.LeaveResponse {
	t.Helper()
	resp, err := f.svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "emp-1",
		Type:       leaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     "family event",
	})
	require.NoError(t, err)
	return resp
}

func TestSubmitCountsInclusiveDays(t *testing.T) {
	f := newFixture(t)

	resp := submit(t, f, "casual", "2026-08-10", "2026-08-12")

	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, 3, resp.TotalDays)
}

func TestSubmitRejectsOverlap(t *testing.T) {
	f := newFixture(t)

	submit(t, f, "casual", "2026-08-10", "2026-08-12")

	_, err := f.svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "sick",
		StartDate:  "2026-08-12",
		EndDate:    "2026-08-14",
		Reason:     "fever",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestSubmitRejectsBadRange(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "casual",
		StartDate:  "2026-08-12",
		EndDate:    "2026-08-10",
		Reason:     "trip",
	})
	assert.Error(t, err)
}

func TestTwoStageApproval(t *testing.T) {
	f := newFixture(t)
	resp := submit(t, f, "casual", "2026-08-10", "2026-08-11")

	// HR cannot approve before the team leader
	_, err := f.svc.ReviewAsHR(context.Background(), leave.ReviewLeaveRequest{
		LeaveID: resp.ID, ReviewerID: "hr-1", Approve: true,
	})
	assert.ErrorIs(t, err, leave.ErrAwaitingTeamLeader)

	tlResp, err := f.svc.ReviewAsTeamLeader(context.Background(), leave.ReviewLeaveRequest{
		LeaveID: resp.ID, ReviewerID: "tl-1", Approve: true,
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusTLApproved, tlResp.Status)

	hrResp, err := f.svc.ReviewAsHR(context.Background(), leave.ReviewLeaveRequest{
		LeaveID: resp.ID, ReviewerID: "hr-1", Approve: true,
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, hrResp.Status)
}

func TestTeamLeaderReviewRequiresOwnReport(t *testing.T) {
	f := newFixture(t)
	resp := submit(t, f, "casual", "2026-08-10", "2026-08-11")

	_, err := f.svc.ReviewAsTeamLeader(context.Background(), leave.ReviewLeaveRequest{
		LeaveID: resp.ID, ReviewerID: "hr-1", Approve: true,
	})
	assert.ErrorIs(t, err, leave.ErrNotTeamLeader)
}

func TestRejectionRequiresReason(t *testing.T) {
	f := newFixture(t)
	resp := submit(t, f, "casual", "2026-08-10", "2026-08-11")

	_, err := f.svc.ReviewAsTeamLeader(context.Background(), leave.ReviewLeaveRequest{
		LeaveID: resp.ID, ReviewerID: "tl-1", Approve: false,
	})
	assert.Error(t, err)

	reason := "short staffed that week"
	rejected, err := f.svc.ReviewAsTeamLeader(context.Background(), leave.ReviewLeaveRequest{
		LeaveID: resp.ID, ReviewerID: "tl-1", Approve: false, Reason: &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, reason, *rejected.RejectionReason)
}

func TestReviewIsTerminal(t *testing.T) {
	f := newFixture(t)
	resp := submit(t, f, "casual", "2026-08-10", "2026-08-11")

	reason := "overlaps release"
	_, err := f.svc.ReviewAsTeamLeader(context.Background(), leave.ReviewLeaveRequest{
		LeaveID: resp.ID, ReviewerID: "tl-1", Approve: false, Reason: &reason,
	})
	require.NoError(t, err)

	_, err = f.svc.ReviewAsTeamLeader(context.Background(), leave.ReviewLeaveRequest{
		LeaveID: resp.ID, ReviewerID: "tl-1", Approve: true,
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyReviewed)
}

func TestApprovalStampsWorkingDaysOnly(t *testing.T) {
	f := newFixture(t)
	// Fri 2026-08-07 through Mon 2026-08-10 spans a Sunday
	resp := submit(t, f, "casual", "2026-08-07", "2026-08-10")

	_, err := f.svc.ReviewAsTeamLeader(context.Background(), leave.ReviewLeaveRequest{
		LeaveID: resp.ID, ReviewerID: "tl-1", Approve: true,
	})
	require.NoError(t, err)
	_, err = f.svc.ReviewAsHR(context.Background(), leave.ReviewLeaveRequest{
		LeaveID: resp.ID, ReviewerID: "hr-1", Approve: true,
	})
	require.NoError(t, err)

	// Fri, Sat, Mon stamped; Sunday skipped
	assert.Len(t, f.attendance.days, 3)
	for _, d := range f.attendance.days {
		assert.Equal(t, attendance.StatusOnLeave, d.Status)
		assert.NotEqual(t, time.Sunday, d.Date.Weekday())
	}
}

func TestCancelOnlyByOwnerBeforeTerminal(t *testing.T) {
	f := newFixture(t)
	resp := submit(t, f, "casual", "2026-08-10", "2026-08-11")

	_, err := f.svc.Cancel(context.Background(), resp.ID, "tl-1")
	assert.ErrorIs(t, err, leave.ErrNotOwner)

	cancelled, err := f.svc.Cancel(context.Background(), resp.ID, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusCancelled, cancelled.Status)

	_, err = f.svc.Cancel(context.Background(), resp.ID, "emp-1")
	assert.ErrorIs(t, err, leave.ErrNotCancellable)
}

func TestListPendingForReviewer(t *testing.T) {
	f := newFixture(t)
	resp := submit(t, f, "casual", "2026-08-10", "2026-08-11")

	forTL, err := f.svc.ListPendingForReviewer(context.Background(), "tl-1")
	require.NoError(t, err)
	require.Len(t, forTL, 1)
	assert.Equal(t, resp.ID, forTL[0].ID)

	forHR, err := f.svc.ListPendingForReviewer(context.Background(), "hr-1")
	require.NoError(t, err)
	assert.Empty(t, forHR)

	_, err = f.svc.ReviewAsTeamLeader(context.Background(), leave.ReviewLeaveRequest{
		LeaveID: resp.ID, ReviewerID: "tl-1", Approve: true,
	})
	require.NoError(t, err)

	forHR, err = f.svc.ListPendingForReviewer(context.Background(), "hr-1")
	require.NoError(t, err)
	assert.Len(t, forHR, 1)
}
