package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a record. The (employee, work_date) unique constraint
	// rejects a second record for the same day.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByEmployeeAndDate returns ErrAttendanceNotFound when the day has no record
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// Close persists a check-out only if the record is still open.
	// Returns ErrAlreadyCheckedOut when another request closed it first.
	Close(ctx context.Context, record Record) (Record, error)

	// ListByEmployeeMonth returns the month's records ordered by work date ascending
	ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]Record, error)
}
