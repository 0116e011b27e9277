package payroll

import "github.com/shopspring/decimal"

// Rates carries the configured payroll constants.
type Rates struct {
	// WorkingDayDivisor converts base salary to a daily rate. Fixed,
	// not derived from the actual working-day count of the month.
	WorkingDayDivisor decimal.Decimal
	// LatePenaltyRate is the fraction of a daily rate charged per late
	// arrival, regardless of how late.
	LatePenaltyRate decimal.Decimal
	// PFRate is the provident fund fraction of base salary.
	PFRate decimal.Decimal
	// ProfessionalTax is a flat monthly amount.
	ProfessionalTax decimal.Decimal
}

// Counts are the monthly attendance figures the deductions derive
// from, taken from the employee's monthly summary.
type Counts struct {
	HalfDays        int
	AbsentDays      int
	UnpaidLeaveDays int
	LateArrivals    int
}

// Calculate computes one month's payroll. Each deduction line is
// independent of the others; the record's totals are derived from the
// generated lines so net = gross - sum(lines) holds by construction.
// Lines with a zero amount are omitted.
func Calculate(base, allowances, overtime decimal.Decimal, counts Counts, rates Rates) PayrollRecord {
	dailyRate := base.Div(rates.WorkingDayDivisor)

	lines := make([]DeductionLine, 0, 6)
	addLine := func(category DeductionCategory, quantity int, amount decimal.Decimal) {
		amount = amount.Round(2)
		if amount.IsZero() {
			return
		}
		lines = append(lines, DeductionLine{
			Category: category,
			Quantity: quantity,
			Amount:   amount,
		})
	}

	addLine(DeductionHalfDay, counts.HalfDays,
		dailyRate.Div(decimal.NewFromInt(2)).Mul(decimal.NewFromInt(int64(counts.HalfDays))))
	addLine(DeductionAbsence, counts.AbsentDays,
		dailyRate.Mul(decimal.NewFromInt(int64(counts.AbsentDays))))
	addLine(DeductionUnpaidLeave, counts.UnpaidLeaveDays,
		dailyRate.Mul(decimal.NewFromInt(int64(counts.UnpaidLeaveDays))))
	addLine(DeductionLateArrival, counts.LateArrivals,
		dailyRate.Mul(rates.LatePenaltyRate).Mul(decimal.NewFromInt(int64(counts.LateArrivals))))
	addLine(DeductionProvidentFund, 0, base.Mul(rates.PFRate))
	addLine(DeductionProfessionalTax, 0, rates.ProfessionalTax)

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}

	gross := base.Add(allowances).Add(overtime).Round(2)

	return PayrollRecord{
		BaseSalary:      base,
		Allowances:      allowances,
		OvertimePay:     overtime,
		GrossSalary:     gross,
		TotalDeductions: total,
		NetSalary:       gross.Sub(total),
		Lines:           lines,
	}
}
