package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/domain/employee"
)

type attendanceServiceImpl struct {
	policy         *attendance.WorkdayPolicy
	attendanceRepo attendance.AttendanceRepository
	checkLogRepo   attendance.CheckLogRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	policy *attendance.WorkdayPolicy,
	attendanceRepo attendance.AttendanceRepository,
	checkLogRepo attendance.CheckLogRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		policy:         policy,
		attendanceRepo: attendanceRepo,
		checkLogRepo:   checkLogRepo,
		employeeRepo:   employeeRepo,
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// logCheck appends an audit entry. Audit failures are logged and
// swallowed; they never fail the operation itself.
func (s *attendanceServiceImpl) logCheck(ctx context.Context, employeeID string, action attendance.CheckAction, outcome attendance.CheckOutcome, reason attendance.DenialReason, at time.Time) {
	entry := attendance.CheckLog{
		EmployeeID: employeeID,
		Action:     action,
		Outcome:    outcome,
		Reason:     reason,
		OccurredAt: at,
	}
	if err := s.checkLogRepo.Append(ctx, &entry); err != nil {
		slog.Error("Failed to append check log",
			"employee_id", employeeID,
			"action", action,
			"error", err)
	}
}

func (s *attendanceServiceImpl) CheckIn(ctx context.Context, employeeID string, now time.Time) (attendance.CheckResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.CheckResponse{}, err
	}
	if !emp.IsActive {
		return attendance.CheckResponse{}, employee.ErrEmployeeInactive
	}

	if reason := s.policy.CheckInAllowed(now); reason != attendance.DenialNone {
		s.logCheck(ctx, employeeID, attendance.ActionCheckIn, attendance.OutcomeDenied, reason, now)
		return attendance.CheckResponse{}, attendance.ErrOutsideWindow
	}

	date := dateOf(now)
	status, lateMinutes := s.policy.CheckInStatus(now)

	checkIn := now
	day := &attendance.AttendanceDay{
		EmployeeID:  employeeID,
		Date:        date,
		CheckInTime: &checkIn,
		Status:      status,
		LateMinutes: lateMinutes,
		Remarks:     fmt.Sprintf("checked in at %s", now.Format("15:04")),
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	switch {
	case err == nil:
		if existing.CheckInTime != nil {
			s.logCheck(ctx, employeeID, attendance.ActionCheckIn, attendance.OutcomeDenied, attendance.DenialAlreadyCheckedIn, now)
			return attendance.CheckResponse{}, attendance.ErrAlreadyCheckedIn
		}
		// pre-created row (e.g. marked absent earlier), take it over
		day.ID = existing.ID
		day.Remarks = existing.Remarks + "; " + day.Remarks
		err = s.attendanceRepo.Update(ctx, day)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		err = s.attendanceRepo.Create(ctx, day)
		// the unique (employee_id, date) constraint closes the race
		// between two concurrent first check-ins
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			s.logCheck(ctx, employeeID, attendance.ActionCheckIn, attendance.OutcomeDenied, attendance.DenialAlreadyCheckedIn, now)
			return attendance.CheckResponse{}, attendance.ErrAlreadyCheckedIn
		}
	}
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	s.logCheck(ctx, employeeID, attendance.ActionCheckIn, attendance.OutcomeSuccess, attendance.DenialNone, now)

	return toCheckResponse(day), nil
}

func (s *attendanceServiceImpl) CheckOut(ctx context.Context, employeeID string, now time.Time) (attendance.CheckResponse, error) {
	date := dateOf(now)

	day, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if errors.Is(err, attendance.ErrAttendanceNotFound) || (err == nil && day.CheckInTime == nil) {
		s.logCheck(ctx, employeeID, attendance.ActionCheckOut, attendance.OutcomeDenied, attendance.DenialNotCheckedIn, now)
		return attendance.CheckResponse{}, attendance.ErrNotCheckedIn
	}
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	if day.CheckOutTime != nil {
		s.logCheck(ctx, employeeID, attendance.ActionCheckOut, attendance.OutcomeDenied, attendance.DenialAlreadyCheckedOut, now)
		return attendance.CheckResponse{}, attendance.ErrAlreadyCheckedOut
	}

	// The hours gate runs first: leaving short of the required hours
	// is an insufficient-hours denial even when the check-out window
	// has not opened yet either.
	worked := s.policy.WorkedHours(*day.CheckInTime, now)
	if !s.policy.MeetsRequired(worked) {
		s.logCheck(ctx, employeeID, attendance.ActionCheckOut, attendance.OutcomeDenied, attendance.DenialInsufficientHours, now)
		return attendance.CheckResponse{}, attendance.ErrInsufficientHours
	}

	if reason := s.policy.CheckOutAllowed(now); reason != attendance.DenialNone {
		s.logCheck(ctx, employeeID, attendance.ActionCheckOut, attendance.OutcomeDenied, reason, now)
		return attendance.CheckResponse{}, attendance.ErrCheckOutTooEarly
	}

	s.closeDay(day, now, worked, false)
	day.Remarks = day.Remarks + fmt.Sprintf("; checked out at %s", now.Format("15:04"))
	if err := s.attendanceRepo.Update(ctx, day); err != nil {
		return attendance.CheckResponse{}, err
	}

	s.logCheck(ctx, employeeID, attendance.ActionCheckOut, attendance.OutcomeSuccess, attendance.DenialNone, now)

	return toCheckResponse(day), nil
}

// closeDay stamps the check-out and derives the final status. A full
// day keeps its late marker; otherwise the classification by worked
// hours wins.
func (s *attendanceServiceImpl) closeDay(day *attendance.AttendanceDay, checkOut time.Time, worked decimal.Decimal, viaSweep bool) {
	status, worked := s.policy.Classify(worked, viaSweep)
	if status == attendance.StatusPresent && day.LateMinutes > 0 {
		status = attendance.StatusLate
	}

	out := checkOut
	day.CheckOutTime = &out
	day.Status = status
	day.WorkedHours = worked
}

func (s *attendanceServiceImpl) Sweep(ctx context.Context, now time.Time) (attendance.SweepResult, error) {
	result := attendance.SweepResult{SweptAt: now}
	if !s.policy.SweepDue(now) {
		return result, nil
	}

	date := dateOf(now)
	open, err := s.attendanceRepo.ListOpenByDate(ctx, date)
	if err != nil {
		return result, err
	}

	for i := range open {
		day := &open[i]
		closeAt := s.policy.OfficeCloseOn(*day.CheckInTime)
		worked := s.policy.WorkedHours(*day.CheckInTime, closeAt)

		s.closeDay(day, closeAt, worked, true)
		day.Remarks = day.Remarks + fmt.Sprintf("; auto-checked out at %s", closeAt.Format("15:04"))

		if err := s.attendanceRepo.Update(ctx, day); err != nil {
			slog.Error("Failed to auto-check out",
				"attendance_id", day.ID,
				"employee_id", day.EmployeeID,
				"error", err)
			continue
		}

		s.logCheck(ctx, day.EmployeeID, attendance.ActionAutoCheckOut, attendance.OutcomeSuccess, attendance.DenialNone, closeAt)
		result.ClosedDays++
	}

	return result, nil
}

func (s *attendanceServiceImpl) Today(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	day, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dateOf(now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(day), nil
}

func (s *attendanceServiceImpl) ListByMonth(ctx context.Context, req attendance.GetAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	days, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, req.EmployeeID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(days))
	for i := range days {
		responses = append(responses, toAttendanceResponse(&days[i]))
	}
	return responses, nil
}

func (s *attendanceServiceImpl) ListLogs(ctx context.Context, employeeID string, limit int) ([]attendance.CheckLogResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, err := s.checkLogRepo.ListByEmployee(ctx, employeeID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.CheckLogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, attendance.CheckLogResponse{
			ID:         l.ID,
			EmployeeID: l.EmployeeID,
			Action:     l.Action,
			Outcome:    l.Outcome,
			Reason:     l.Reason,
			OccurredAt: l.OccurredAt,
		})
	}
	return responses, nil
}

func toCheckResponse(day *attendance.AttendanceDay) attendance.CheckResponse {
	return attendance.CheckResponse{
		AttendanceID: day.ID,
		Date:         day.Date.Format("2006-01-02"),
		CheckInTime:  day.CheckInTime,
		CheckOutTime: day.CheckOutTime,
		Status:       day.Status,
		WorkedHours:  day.WorkedHours,
		LateMinutes:  day.LateMinutes,
	}
}

func toAttendanceResponse(day *attendance.AttendanceDay) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           day.ID,
		EmployeeID:   day.EmployeeID,
		EmployeeName: day.EmployeeName,
		EmployeeCode: day.EmployeeCode,
		Date:         day.Date.Format("2006-01-02"),
		CheckInTime:  day.CheckInTime,
		CheckOutTime: day.CheckOutTime,
		Status:       day.Status,
		WorkedHours:  day.WorkedHours,
		LateMinutes:  day.LateMinutes,
		Remarks:      day.Remarks,
	}
}
