package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeInactive   = errors.New("employee is not active")
	ErrResignBeforeHire   = errors.New("resign date must not be before hire date")
	ErrEmployeeIDRequired = errors.New("employee id is required")
)
