package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// WorkdayPolicy classifies wall-clock times against the configured
// attendance windows. All methods are pure: the caller supplies the
// current time, and side effects (persisting the day, logging the
// attempt) stay with the caller.
type WorkdayPolicy struct {
	checkInOpens  int // minutes since midnight
	checkInCloses int
	officialStart int
	checkOutOpens int
	officeClose   int
	requiredHours decimal.Decimal
	halfDayHours  decimal.Decimal
}

// NewWorkdayPolicy parses the clock-time boundaries ("HH:MM") and hour
// thresholds into a policy. Boundaries must be ordered: check-in opens
// before it closes, check-out opens before office close.
func NewWorkdayPolicy(checkInOpens, checkInCloses, officialStart, checkOutOpens, officeClose string, requiredHours, halfDayHours float64) (*WorkdayPolicy, error) {
	p := &WorkdayPolicy{
		requiredHours: decimal.NewFromFloat(requiredHours),
		halfDayHours:  decimal.NewFromFloat(halfDayHours),
	}

	for _, b := range []struct {
		name  string
		value string
		dst   *int
	}{
		{"check-in opens", checkInOpens, &p.checkInOpens},
		{"check-in closes", checkInCloses, &p.checkInCloses},
		{"official start", officialStart, &p.officialStart},
		{"check-out opens", checkOutOpens, &p.checkOutOpens},
		{"office close", officeClose, &p.officeClose},
	} {
		m, err := parseClock(b.value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s time %q: %w", b.name, b.value, err)
		}
		*b.dst = m
	}

	if p.checkInOpens >= p.checkInCloses {
		return nil, fmt.Errorf("check-in window is empty: opens %s, closes %s", checkInOpens, checkInCloses)
	}
	if p.checkOutOpens > p.officeClose {
		return nil, fmt.Errorf("check-out opens %s after office close %s", checkOutOpens, officeClose)
	}
	if p.halfDayHours.GreaterThan(p.requiredHours) {
		return nil, fmt.Errorf("half-day threshold %s exceeds required hours %s", p.halfDayHours, p.requiredHours)
	}

	return p, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// clockOn places a minutes-since-midnight boundary on t's calendar day.
func clockOn(t time.Time, minutes int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		minutes/60, minutes%60, 0, 0, t.Location())
}

// IsWorkingDay reports whether t falls on a working day. Sunday is the
// only non-working day of the week.
func (p *WorkdayPolicy) IsWorkingDay(t time.Time) bool {
	return t.Weekday() != time.Sunday
}

// CheckInAllowed classifies a check-in attempt at now. It returns
// DenialNone when the attempt falls inside the check-in window, or the
// reason it does not.
func (p *WorkdayPolicy) CheckInAllowed(now time.Time) DenialReason {
	if !p.IsWorkingDay(now) {
		return DenialWeekend
	}
	m := minuteOfDay(now)
	if m < p.checkInOpens {
		return DenialBeforeOpen
	}
	if m > p.checkInCloses {
		return DenialAfterClose
	}
	return DenialNone
}

// LateBy returns how far now falls strictly after the official start,
// as a ceiling of whole minutes. The comparison keeps second
// precision: arriving even one second past the start is late, and a
// late check-in always yields at least 1. An on-time check-in yields 0.
func (p *WorkdayPolicy) LateBy(now time.Time) int {
	start := clockOn(now, p.officialStart)
	if !now.After(start) {
		return 0
	}
	return int((now.Sub(start) + time.Minute - 1) / time.Minute)
}

// CheckInStatus derives the status and late minutes for a successful
// check-in at now.
func (p *WorkdayPolicy) CheckInStatus(now time.Time) (Status, int) {
	if late := p.LateBy(now); late > 0 {
		return StatusLate, late
	}
	return StatusPresent, 0
}

// CheckOutAllowed reports whether a manual check-out may be attempted
// at now. The worked-hours gate is separate (see Classify).
func (p *WorkdayPolicy) CheckOutAllowed(now time.Time) DenialReason {
	if minuteOfDay(now) < p.checkOutOpens {
		return DenialTooEarly
	}
	return DenialNone
}

// SweepDue reports whether the office-close sweep should run at now.
func (p *WorkdayPolicy) SweepDue(now time.Time) bool {
	return minuteOfDay(now) >= p.officeClose
}

// OfficeCloseOn returns the office-close timestamp for the given
// day. The sweep stamps forced check-outs with this time rather than
// the moment the sweep happened to run.
func (p *WorkdayPolicy) OfficeCloseOn(date time.Time) time.Time {
	return clockOn(date, p.officeClose)
}

// WorkedHours computes elapsed hours between check-in and check-out as
// a wall-clock subtraction, rounded to two decimal places.
func (p *WorkdayPolicy) WorkedHours(checkIn, checkOut time.Time) decimal.Decimal {
	minutes := checkOut.Sub(checkIn).Minutes()
	if minutes < 0 {
		minutes = 0
	}
	return decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60)).Round(2)
}

// MeetsRequired reports whether worked covers a full workday.
func (p *WorkdayPolicy) MeetsRequired(worked decimal.Decimal) bool {
	return worked.GreaterThanOrEqual(p.requiredHours)
}

// Classify maps raw worked hours to a day status. When viaSweep is
// set, hours at or above the half-day threshold are floored up to the
// required amount and the day counts as present; below the threshold
// the raw value stands and the day is an early departure. A manual
// check-out never reaches Classify with worked below the requirement
// (the service refuses it first), but the half-day and early-departure
// branches cover administrative corrections that bypass the gate.
func (p *WorkdayPolicy) Classify(worked decimal.Decimal, viaSweep bool) (Status, decimal.Decimal) {
	if viaSweep {
		if worked.GreaterThanOrEqual(p.halfDayHours) {
			if worked.LessThan(p.requiredHours) {
				worked = p.requiredHours
			}
			return StatusPresent, worked
		}
		return StatusEarlyDeparture, worked
	}

	switch {
	case worked.GreaterThanOrEqual(p.requiredHours):
		return StatusPresent, worked
	case worked.GreaterThanOrEqual(p.halfDayHours):
		return StatusHalfDay, worked
	default:
		return StatusEarlyDeparture, worked
	}
}
