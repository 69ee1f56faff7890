package attendance

import (
	"time"
)

// StandardDailyMinutes is the working day; anything beyond it is overtime.
const StandardDailyMinutes = 480

// Record is one employee's check-in/check-out pair for a calendar day.
type Record struct {
	ID              string
	EmployeeID      string
	WorkDate        time.Time
	CheckIn         *time.Time
	CheckOut        *time.Time
	WorkedMinutes   int
	OvertimeMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsClosed reports whether the employee has already checked out.
func (r Record) IsClosed() bool {
	return r.CheckOut != nil
}

// Close stamps the check-out and derives worked and overtime minutes
// from the raw elapsed time, independent of clock-time cutoffs.
func (r *Record) Close(now time.Time) {
	r.CheckOut = &now

	total := 0
	if r.CheckIn != nil {
		if elapsed := now.Sub(*r.CheckIn); elapsed > 0 {
			total = int(elapsed / time.Minute)
		}
	}
	r.WorkedMinutes = total
	r.OvertimeMinutes = max(0, total-StandardDailyMinutes)
}
