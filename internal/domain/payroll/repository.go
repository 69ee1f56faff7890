package payroll

import "context"

type ListFilter struct {
	Year       *int
	Month      *int
	EmployeeID *string
}

type PayrollRepository interface {
	// Create inserts a draft record. The (employee, year, month) unique
	// constraint rejects a second calculation for the same period.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID returns ErrPayrollRecordNotFound when absent
	GetByID(ctx context.Context, id string) (Record, error)

	// Confirm persists the confirmation only while the record is a draft.
	// Returns ErrAlreadyConfirmed when it was confirmed concurrently.
	Confirm(ctx context.Context, record Record) (Record, error)

	// List returns records newest period first, then by employee number
	List(ctx context.Context, filter ListFilter) ([]Record, error)

	// ListForLedger returns every record of the period ordered by
	// department name then employee number.
	ListForLedger(ctx context.Context, year, month int) ([]Record, error)
}
