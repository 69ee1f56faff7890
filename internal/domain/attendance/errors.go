package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("you have already checked in today")
	ErrNoCheckInToday     = errors.New("you have not checked in today")
	ErrAlreadyCheckedOut  = errors.New("you have already checked out today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
