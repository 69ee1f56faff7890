package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrInvalidDateRange      = errors.New("end date must not be before start date")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrMissingRejectReason   = errors.New("reject reason is required")
	ErrInvalidAction         = errors.New("action must be approve or reject")
)
