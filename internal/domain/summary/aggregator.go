package summary

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/domain/leave"
)

// Aggregate scans one employee's attendance days and approved leave
// requests for the target month and produces the monthly counters.
// Every attendance row is counted in exactly one status bucket, so the
// buckets always sum to the number of rows scanned. Overtime is the
// worked time beyond the required hours on days that met them.
func Aggregate(employeeID string, month, year int, days []attendance.AttendanceDay, approved []leave.LeaveRequest, requiredHours decimal.Decimal) MonthlySummary {
	s := MonthlySummary{
		EmployeeID:    employeeID,
		Month:         month,
		Year:          year,
		WorkedHours:   decimal.Zero,
		OvertimeHours: decimal.Zero,
	}

	for _, d := range days {
		switch d.Status {
		case attendance.StatusPresent, attendance.StatusRemote:
			if d.Status == attendance.StatusRemote {
				s.RemoteDays++
			} else {
				s.PresentDays++
			}
		case attendance.StatusAbsent:
			s.AbsentDays++
		case attendance.StatusHalfDay:
			s.HalfDays++
		case attendance.StatusLate:
			s.LateDays++
		case attendance.StatusEarlyDeparture:
			s.EarlyDepartures++
		case attendance.StatusOnLeave:
			s.LeaveDays++
		case attendance.StatusHoliday:
			s.HolidayDays++
		case attendance.StatusWeekend:
			s.WeekendDays++
		}

		s.TotalLateMinutes += d.LateMinutes
		s.WorkedHours = s.WorkedHours.Add(d.WorkedHours)
		if d.WorkedHours.GreaterThan(requiredHours) {
			s.OvertimeHours = s.OvertimeHours.Add(d.WorkedHours.Sub(requiredHours))
		}
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	for _, lr := range approved {
		overlap := lr.Overlap(from, to)
		if overlap == 0 {
			continue
		}
		if lr.Type.Paid() {
			s.PaidLeaveDays += overlap
		} else {
			s.UnpaidLeaveDays += overlap
		}
	}

	return s
}
