package cron

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

type AttendanceJobs struct {
	attendanceSvc  attendance.AttendanceService
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	policy         *attendance.WorkdayPolicy
	sweepInterval  time.Duration
}

func NewAttendanceJobs(
	attendanceSvc attendance.AttendanceService,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy *attendance.WorkdayPolicy,
	sweepInterval time.Duration,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc:  attendanceSvc,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		policy:         policy,
		sweepInterval:  sweepInterval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_checkout_sweep", j.sweepInterval, j.AutoCheckoutSweep)
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// AutoCheckoutSweep force-closes open attendance days once the office
// has closed. The service skips days that are already closed, so the
// job is safe to run on every tick.
func (j *AttendanceJobs) AutoCheckoutSweep(ctx context.Context) error {
	now := time.Now()
	if !j.policy.SweepDue(now) {
		return nil
	}

	result, err := j.attendanceSvc.Sweep(ctx, now)
	if err != nil {
		return fmt.Errorf("auto-checkout sweep: %w", err)
	}

	if result.ClosedDays > 0 {
		slog.Info("Cron: Auto-closed open attendance days", "count", result.ClosedDays)
	}
	return nil
}

// MarkAbsentEmployees backfills absent records for the previous
// working day for every active employee who never checked in.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59)
	now := time.Now()
	if now.Hour() != 0 {
		return nil
	}

	yesterday := now.AddDate(0, 0, -1)
	date := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)
	if !j.policy.IsWorkingDay(date) {
		return nil
	}

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list active employees: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		_, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
		if err == nil {
			continue
		}
		if !errors.Is(err, attendance.ErrAttendanceNotFound) {
			slog.Error("Cron: Failed to look up attendance", "employee_id", emp.ID, "error", err)
			continue
		}

		record := attendance.AttendanceDay{
			EmployeeID:  emp.ID,
			Date:        date,
			Status:      attendance.StatusAbsent,
			WorkedHours: decimal.Zero,
			Remarks:     "marked absent: no check-in recorded",
		}
		if err := j.attendanceRepo.Create(ctx, &record); err != nil {
			slog.Error("Cron: Failed to mark absent",
				"employee_id", emp.ID,
				"date", date.Format("2006-01-02"),
				"error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		slog.Info("Cron: Marked absent employees", "count", marked, "date", date.Format("2006-01-02"))
	}
	return nil
}
