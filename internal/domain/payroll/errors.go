package payroll

import "errors"

var (
	ErrPayrollNotFound  = errors.New("payroll record not found")
	ErrPayrollProcessed = errors.New("payroll record is already processed")
)
