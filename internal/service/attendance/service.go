package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository, clk clock.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	now := s.clock.Now()

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	record := attendance.Record{
		ID:         id.String(),
		EmployeeID: employeeID,
		WorkDate:   clock.DateOf(now),
		CheckIn:    &now,
	}

	// The (employee, work_date) constraint decides duplicate check-ins
	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
			case "23503": // foreign_key_violation
				return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
			}
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	slog.Info("employee checked in", "employee_id", employeeID, "work_date", created.WorkDate.Format("2006-01-02"))

	return attendance.NewAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.clock.Now()

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, clock.DateOf(now))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNoCheckInToday
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if record.IsClosed() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.Close(now)

	closed, err := s.attendanceRepo.Close(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	slog.Info("employee checked out",
		"employee_id", employeeID,
		"worked_minutes", closed.WorkedMinutes,
		"overtime_minutes", closed.OvertimeMinutes,
	)

	return attendance.NewAttendanceResponse(closed), nil
}

// MonthlyRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyRecords(ctx context.Context, employeeID string, year, month int) ([]attendance.AttendanceResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ErrInvalidMonth
	}

	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, attendance.NewAttendanceResponse(r))
	}
	return out, nil
}
