package clock

import "time"

// Clock is the single source of "now" for business rules.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// System returns a wall clock reporting time in loc.
func System(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed always reports the same instant. Used by tests.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

// Advance moves a fixed clock forward.
func (f *Fixed) Advance(d time.Duration) {
	f.T = f.T.Add(d)
}

// DateOf returns the calendar date of t in t's own location, as midnight UTC.
// Midnight UTC matches how pgx scans a DATE column.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the first day of the month and the first day of the next one.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
