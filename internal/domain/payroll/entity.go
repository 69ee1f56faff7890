package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusConfirmed Status = "CONFIRMED"
)

// IsTerminal reports whether the record is locked.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusConfirmed:
		return true
	case StatusDraft:
		return false
	default:
		return true
	}
}

// Record is one employee's pay for a month. Financial fields never change
// after creation; confirmation only flips status and stamps the confirmer.
type Record struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int

	// Earnings
	BaseSalary         decimal.Decimal
	MealAllowance      decimal.Decimal
	TransportAllowance decimal.Decimal
	OvertimePay        decimal.Decimal
	GrossPay           decimal.Decimal

	// Deductions
	NationalPension     decimal.Decimal
	HealthInsurance     decimal.Decimal
	LongTermCare        decimal.Decimal
	EmploymentInsurance decimal.Decimal
	IncomeTax           decimal.Decimal
	LocalIncomeTax      decimal.Decimal
	TotalDeduction      decimal.Decimal

	NetPay          decimal.Decimal
	OvertimeMinutes int

	Status      Status
	ConfirmedBy *string
	ConfirmedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	EmployeeNo     string
	EmployeeName   string
	DepartmentName string
	PositionName   string
}

// Confirm locks a draft record.
func (r *Record) Confirm(confirmedBy string, now time.Time) error {
	switch r.Status {
	case StatusConfirmed:
		return ErrAlreadyConfirmed
	case StatusDraft:
		r.Status = StatusConfirmed
		r.ConfirmedBy = &confirmedBy
		r.ConfirmedAt = &now
		return nil
	default:
		return ErrUnknownStatus
	}
}
