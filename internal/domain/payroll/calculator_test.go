package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() Rates {
	return Rates{
		WorkingDayDivisor: decimal.NewFromInt(26),
		LatePenaltyRate:   decimal.NewFromFloat(0.10),
		PFRate:            decimal.NewFromFloat(0.12),
		ProfessionalTax:   decimal.NewFromInt(200),
	}
}

func lineAmount(t *testing.T, rec PayrollRecord, cat DeductionCategory) decimal.Decimal {
	t.Helper()
	for _, l := range rec.Lines {
		if l.Category == cat {
			return l.Amount
		}
	}
	t.Fatalf("no %s line in %d lines", cat, len(rec.Lines))
	return decimal.Zero
}

func TestCalculateItemizedDeductions(t *testing.T) {
	// base 26000 gives a daily rate of 1000
	rec := Calculate(decimal.NewFromInt(26000), decimal.Zero, decimal.Zero, Counts{
		HalfDays:     2,
		AbsentDays:   1,
		LateArrivals: 1,
	}, testRates())

	assert.True(t, lineAmount(t, rec, DeductionHalfDay).Equal(decimal.NewFromInt(1000)))
	assert.True(t, lineAmount(t, rec, DeductionAbsence).Equal(decimal.NewFromInt(1000)))
	assert.True(t, lineAmount(t, rec, DeductionLateArrival).Equal(decimal.NewFromInt(100)))
	assert.True(t, lineAmount(t, rec, DeductionProvidentFund).Equal(decimal.NewFromInt(3120)))
	assert.True(t, lineAmount(t, rec, DeductionProfessionalTax).Equal(decimal.NewFromInt(200)))

	assert.True(t, rec.TotalDeductions.Equal(decimal.NewFromInt(5420)),
		"total deductions = %s", rec.TotalDeductions)
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(20580)),
		"net salary = %s", rec.NetSalary)
}

func TestCalculateNetIsGrossMinusLineSum(t *testing.T) {
	rec := Calculate(decimal.NewFromInt(52000), decimal.NewFromInt(3000), decimal.NewFromFloat(750.50), Counts{
		HalfDays:        1,
		AbsentDays:      2,
		UnpaidLeaveDays: 3,
		LateArrivals:    4,
	}, testRates())

	sum := decimal.Zero
	for _, l := range rec.Lines {
		sum = sum.Add(l.Amount)
	}

	assert.True(t, rec.TotalDeductions.Equal(sum))
	assert.True(t, rec.NetSalary.Equal(rec.GrossSalary.Sub(sum)))
	assert.True(t, rec.GrossSalary.Equal(decimal.NewFromFloat(55750.50)))
}

func TestCalculateOmitsZeroLines(t *testing.T) {
	rec := Calculate(decimal.NewFromInt(26000), decimal.Zero, decimal.Zero, Counts{}, testRates())

	// only the flat-rate lines remain
	require.Len(t, rec.Lines, 2)
	assert.Equal(t, DeductionProvidentFund, rec.Lines[0].Category)
	assert.Equal(t, DeductionProfessionalTax, rec.Lines[1].Category)
}

func TestCalculateUnpaidLeaveAtDailyRate(t *testing.T) {
	rec := Calculate(decimal.NewFromInt(26000), decimal.Zero, decimal.Zero, Counts{
		UnpaidLeaveDays: 3,
	}, testRates())

	assert.True(t, lineAmount(t, rec, DeductionUnpaidLeave).Equal(decimal.NewFromInt(3000)))
}
