package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/domain/leave"
)

func day(date time.Time, status attendance.Status, worked float64, lateMinutes int) attendance.AttendanceDay {
	return attendance.AttendanceDay{
		EmployeeID:  "emp-1",
		Date:        date,
		Status:      status,
		WorkedHours: decimal.NewFromFloat(worked),
		LateMinutes: lateMinutes,
	}
}

func TestAggregateCountsEveryRowExactlyOnce(t *testing.T) {
	march := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	days := []attendance.AttendanceDay{
		day(march(2), attendance.StatusPresent, 8.25, 0),
		day(march(3), attendance.StatusPresent, 8.0, 0),
		day(march(4), attendance.StatusLate, 8.0, 5),
		day(march(5), attendance.StatusHalfDay, 4.0, 0),
		day(march(6), attendance.StatusAbsent, 0, 0),
		day(march(7), attendance.StatusEarlyDeparture, 2.5, 0),
		day(march(8), attendance.StatusWeekend, 0, 0),
		day(march(9), attendance.StatusOnLeave, 0, 0),
		day(march(10), attendance.StatusHoliday, 0, 0),
		day(march(11), attendance.StatusRemote, 8.0, 0),
	}

	s := Aggregate("emp-1", 3, 2026, days, nil, decimal.NewFromInt(8))

	assert.Equal(t, 2, s.PresentDays)
	assert.Equal(t, 1, s.LateDays)
	assert.Equal(t, 1, s.HalfDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.Equal(t, 1, s.EarlyDepartures)
	assert.Equal(t, 1, s.WeekendDays)
	assert.Equal(t, 1, s.LeaveDays)
	assert.Equal(t, 1, s.HolidayDays)
	assert.Equal(t, 1, s.RemoteDays)

	total := s.PresentDays + s.LateDays + s.HalfDays + s.AbsentDays +
		s.EarlyDepartures + s.WeekendDays + s.LeaveDays + s.HolidayDays + s.RemoteDays
	assert.Equal(t, len(days), total)

	assert.Equal(t, 5, s.TotalLateMinutes)
	assert.True(t, s.WorkedHours.Equal(decimal.NewFromFloat(38.75)), "worked hours = %s", s.WorkedHours)
	assert.True(t, s.OvertimeHours.Equal(decimal.NewFromFloat(0.25)), "overtime hours = %s", s.OvertimeHours)
}

func TestAggregateSplitsLeaveByPaidFlag(t *testing.T) {
	leaves := []leave.LeaveRequest{
		{
			Type:      leave.TypeCasual,
			StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			Type:      leave.TypeUnpaid,
			StartDate: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC),
		},
		// spills into April, only the March days count
		{
			Type:      leave.TypeUnpaid,
			StartDate: time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		},
		// entirely outside the month
		{
			Type:      leave.TypeSick,
			StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	s := Aggregate("emp-1", 3, 2026, nil, leaves, decimal.NewFromInt(8))

	assert.Equal(t, 3, s.PaidLeaveDays)
	assert.Equal(t, 4, s.UnpaidLeaveDays)
}

func TestAggregateIsDeterministic(t *testing.T) {
	days := []attendance.AttendanceDay{
		day(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 8.0, 0),
		day(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), attendance.StatusLate, 8.5, 12),
	}

	first := Aggregate("emp-1", 3, 2026, days, nil, decimal.NewFromInt(8))
	second := Aggregate("emp-1", 3, 2026, days, nil, decimal.NewFromInt(8))

	assert.Equal(t, first, second)
}
