package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	id, employee_id, work_date, check_in, check_out,
	worked_minutes, overtime_minutes, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var r attendance.Record
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.WorkDate, &r.CheckIn, &r.CheckOut,
		&r.WorkedMinutes, &r.OvertimeMinutes, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, work_date, check_in)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + attendanceColumns

	// Unique violations are returned as-is for the service to translate
	created, err := scanAttendance(q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.WorkDate,
		record.CheckIn,
	))
	if err != nil {
		return attendance.Record{}, err
	}
	return created, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND work_date = $2`

	r, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return r, nil
}

// Close implements attendance.AttendanceRepository.
func (a *attendanceRepository) Close(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out = $2, worked_minutes = $3, overtime_minutes = $4, updated_at = now()
		WHERE id = $1 AND check_out IS NULL
		RETURNING ` + attendanceColumns

	closed, err := scanAttendance(q.QueryRow(ctx, query,
		record.ID,
		record.CheckOut,
		record.WorkedMinutes,
		record.OvertimeMinutes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Record{}, fmt.Errorf("failed to close attendance record: %w", err)
	}
	return closed, nil
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	from, to := clock.MonthRange(year, month)
	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND work_date >= $2 AND work_date < $3
		ORDER BY work_date ASC`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		r, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance records: %w", err)
	}

	return records, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}
