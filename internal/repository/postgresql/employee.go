package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func (r *employeeRepository) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_no, e.name, e.resident_no,
			   e.department_id, d.name, e.position_id, p.name,
			   e.hire_date, e.resign_date, e.base_salary, e.is_active,
			   e.created_at, e.updated_at
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		JOIN positions p ON p.id = e.position_id
		WHERE e.id = $1`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeNo, &emp.Name, &emp.ResidentNo,
		&emp.DepartmentID, &emp.DepartmentName, &emp.PositionID, &emp.PositionName,
		&emp.HireDate, &emp.ResignDate, &emp.BaseSalary, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	// the uuid column rejects anything else with 22P02
	if !validator.IsUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	return r.getEmployee(ctx, id)
}

// Resign implements employee.EmployeeRepository.
func (r *employeeRepository) Resign(ctx context.Context, id string, resignDate time.Time) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET resign_date = $2, is_active = FALSE, updated_at = now()
		WHERE id = $1 AND is_active`

	tag, err := q.Exec(ctx, query, id, resignDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to resign employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.Employee{}, employee.ErrEmployeeInactive
	}

	return r.getEmployee(ctx, id)
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}
