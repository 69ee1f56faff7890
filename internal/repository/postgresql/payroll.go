package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

const payrollColumns = `
	pr.id, pr.employee_id, pr.year, pr.month,
	pr.base_salary, pr.meal_allowance, pr.transport_allowance, pr.overtime_pay, pr.gross_pay,
	pr.national_pension, pr.health_insurance, pr.long_term_care, pr.employment_insurance,
	pr.income_tax, pr.local_income_tax, pr.total_deduction,
	pr.net_pay, pr.overtime_minutes,
	pr.status, pr.confirmed_by, pr.confirmed_at, pr.created_at, pr.updated_at,
	e.employee_no, e.name, d.name, p.name`

const payrollFrom = `
	FROM payroll_records pr
	JOIN employees e ON e.id = pr.employee_id
	JOIN departments d ON d.id = e.department_id
	JOIN positions p ON p.id = e.position_id`

func scanPayroll(row pgx.Row) (payroll.Record, error) {
	var r payroll.Record
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.Year, &r.Month,
		&r.BaseSalary, &r.MealAllowance, &r.TransportAllowance, &r.OvertimePay, &r.GrossPay,
		&r.NationalPension, &r.HealthInsurance, &r.LongTermCare, &r.EmploymentInsurance,
		&r.IncomeTax, &r.LocalIncomeTax, &r.TotalDeduction,
		&r.NetPay, &r.OvertimeMinutes,
		&r.Status, &r.ConfirmedBy, &r.ConfirmedAt, &r.CreatedAt, &r.UpdatedAt,
		&r.EmployeeNo, &r.EmployeeName, &r.DepartmentName, &r.PositionName,
	)
	return r, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, year, month,
			base_salary, meal_allowance, transport_allowance, overtime_pay, gross_pay,
			national_pension, health_insurance, long_term_care, employment_insurance,
			income_tax, local_income_tax, total_deduction,
			net_pay, overtime_minutes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		) RETURNING created_at, updated_at`

	// Unique violations are returned unwrapped for the service to translate
	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Year,
		record.Month,
		record.BaseSalary,
		record.MealAllowance,
		record.TransportAllowance,
		record.OvertimePay,
		record.GrossPay,
		record.NationalPension,
		record.HealthInsurance,
		record.LongTermCare,
		record.EmploymentInsurance,
		record.IncomeTax,
		record.LocalIncomeTax,
		record.TotalDeduction,
		record.NetPay,
		record.OvertimeMinutes,
		record.Status,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return payroll.Record{}, err
	}

	return record, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	// the uuid column rejects anything else with 22P02
	if !validator.IsUUID(id) {
		return payroll.Record{}, payroll.ErrPayrollRecordNotFound
	}

	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + payrollFrom + ` WHERE pr.id = $1`

	record, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return record, nil
}

// Confirm implements payroll.PayrollRepository.
func (r *payrollRepository) Confirm(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $2, confirmed_by = $3, confirmed_at = $4, updated_at = now()
		WHERE id = $1 AND status = 'DRAFT'
		RETURNING updated_at`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.Status,
		record.ConfirmedBy,
		record.ConfirmedAt,
	).Scan(&record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrAlreadyConfirmed
		}
		return payroll.Record{}, fmt.Errorf("failed to confirm payroll record: %w", err)
	}

	return record, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Record, error) {
	var conditions []string
	var args []interface{}

	if filter.Year != nil {
		args = append(args, *filter.Year)
		conditions = append(conditions, fmt.Sprintf("pr.year = $%d", len(args)))
	}
	if filter.Month != nil {
		args = append(args, *filter.Month)
		conditions = append(conditions, fmt.Sprintf("pr.month = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("pr.employee_id = $%d", len(args)))
	}

	query := `SELECT ` + payrollColumns + payrollFrom
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY pr.year DESC, pr.month DESC, e.employee_no ASC"

	return r.query(ctx, query, args...)
}

// ListForLedger implements payroll.PayrollRepository.
func (r *payrollRepository) ListForLedger(ctx context.Context, year, month int) ([]payroll.Record, error) {
	query := `SELECT ` + payrollColumns + payrollFrom + `
		WHERE pr.year = $1 AND pr.month = $2
		ORDER BY d.name ASC, e.employee_no ASC`

	return r.query(ctx, query, year, month)
}

func (r *payrollRepository) query(ctx context.Context, query string, args ...interface{}) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	records := []payroll.Record{}
	for rows.Next() {
		record, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll records: %w", err)
	}

	return records, nil
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{
		db: db,
	}
}
