package payroll

import (
	"context"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
)

type PayrollService interface {
	// Calculate creates the DRAFT record for an employee's month
	Calculate(ctx context.Context, req CalculateRequest) (PayrollResponse, error)

	// Confirm locks a DRAFT record
	Confirm(ctx context.Context, id string, confirmedBy string) (PayrollResponse, error)

	// GetPayroll returns a record the actor is allowed to see
	GetPayroll(ctx context.Context, id string, actor user.Actor) (PayrollResponse, error)

	ListPayrolls(ctx context.Context, filter ListFilter) ([]PayrollResponse, error)

	// MyPayrolls lists the actor's own records, newest first
	MyPayrolls(ctx context.Context, actor user.Actor) ([]PayrollResponse, error)

	// Ledger groups a month's records by department with subtotals
	Ledger(ctx context.Context, period Period) (LedgerResponse, error)
}
