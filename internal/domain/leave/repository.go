package leave

import "context"

type LeaveFilter struct {
	// EmployeeID restricts the list to one employee when set
	EmployeeID *string
}

type LeaveRepository interface {
	Create(ctx context.Context, leave Leave) (Leave, error)

	// GetByID returns ErrLeaveNotFound when absent
	GetByID(ctx context.Context, id string) (Leave, error)

	// Decide persists the decision only if the leave is still pending.
	// Returns ErrLeaveAlreadyProcessed when a concurrent decision won.
	Decide(ctx context.Context, leave Leave) (Leave, error)

	// List returns leaves newest first
	List(ctx context.Context, filter LeaveFilter) ([]Leave, error)
}
