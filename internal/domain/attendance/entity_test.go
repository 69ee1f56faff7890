package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func openRecord(checkIn time.Time) Record {
	return Record{ID: "r1", EmployeeID: "e1", CheckIn: &checkIn}
}

func TestRecordClose_Minutes(t *testing.T) {
	in := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		worked       time.Duration
		wantWorked   int
		wantOvertime int
	}{
		{"nine hours", 9 * time.Hour, 540, 60},
		{"seven hours", 7 * time.Hour, 420, 0},
		{"exactly eight hours", 8 * time.Hour, 480, 0},
		{"partial minute is floored", 8*time.Hour + 30*time.Minute + 59*time.Second, 510, 30},
		{"zero", 0, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := openRecord(in)
			r.Close(in.Add(c.worked))

			assert.True(t, r.IsClosed())
			assert.Equal(t, c.wantWorked, r.WorkedMinutes)
			assert.Equal(t, c.wantOvertime, r.OvertimeMinutes)
		})
	}
}

func TestRecordClose_ClockSkewNeverNegative(t *testing.T) {
	in := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	r := openRecord(in)

	r.Close(in.Add(-5 * time.Minute))

	assert.Equal(t, 0, r.WorkedMinutes)
	assert.Equal(t, 0, r.OvertimeMinutes)
}
