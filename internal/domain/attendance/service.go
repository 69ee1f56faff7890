package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens today's record for the employee
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes today's record and derives worked/overtime minutes
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// MonthlyRecords lists the employee's records for a month, oldest first
	MonthlyRecords(ctx context.Context, employeeID string, year, month int) ([]AttendanceResponse, error)
}
