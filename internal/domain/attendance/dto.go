package attendance

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
)

type MonthlyFilter struct {
	Year  int
	Month int
}

// ParseMonthlyFilter validates the year/month query before it reaches the service.
func ParseMonthlyFilter(yearStr, monthStr string) (MonthlyFilter, error) {
	year, month, err := validator.ParseYearMonth(yearStr, monthStr)
	if err != nil {
		return MonthlyFilter{}, err
	}
	return MonthlyFilter{Year: year, Month: month}, nil
}

type AttendanceResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	WorkDate        string     `json:"work_date"`
	CheckIn         *time.Time `json:"check_in"`
	CheckOut        *time.Time `json:"check_out"`
	WorkedMinutes   int        `json:"worked_minutes"`
	OvertimeMinutes int        `json:"overtime_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewAttendanceResponse(r Record) AttendanceResponse {
	return AttendanceResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		WorkDate:        r.WorkDate.Format("2006-01-02"),
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		WorkedMinutes:   r.WorkedMinutes,
		OvertimeMinutes: r.OvertimeMinutes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
