package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when absent
	GetByID(ctx context.Context, id string) (Employee, error)

	// Resign stamps the resign date and deactivates an active employee.
	// Returns ErrEmployeeInactive if the employee already left.
	Resign(ctx context.Context, id string, resignDate time.Time) (Employee, error)
}
