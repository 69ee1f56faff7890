package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrAlreadyCalculated     = errors.New("payroll already calculated for this employee and month")
	ErrAlreadyConfirmed      = errors.New("payroll record already confirmed")
	ErrUnknownStatus         = errors.New("unknown payroll status")
	ErrUnsupportedFormat     = errors.New("unsupported export format")
)
