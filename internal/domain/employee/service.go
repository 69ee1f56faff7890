package employee

import "context"

type EmployeeService interface {
	// GetEmployee returns the profile with the resident number masked
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// Resign marks the employee as having left on the given date
	Resign(ctx context.Context, id string, req ResignRequest) (EmployeeResponse, error)
}
