package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/crypto"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	crypto       crypto.Service
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, cryptoSvc crypto.Service) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		crypto:       cryptoSvc,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if validator.IsEmpty(id) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDRequired
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return s.mapEmployeeToResponse(emp), nil
}

// Resign implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Resign(ctx context.Context, id string, req employee.ResignRequest) (employee.EmployeeResponse, error) {
	if validator.IsEmpty(id) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDRequired
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	resignDate, _ := validator.IsValidDate(req.ResignDate)

	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if !existing.IsActive {
		return employee.EmployeeResponse{}, employee.ErrEmployeeInactive
	}
	if resignDate.Before(existing.HireDate) {
		return employee.EmployeeResponse{}, employee.ErrResignBeforeHire
	}

	emp, err := s.employeeRepo.Resign(ctx, id, resignDate)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeInactive) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to resign employee: %w", err)
	}

	slog.Info("employee resigned", "employee_id", emp.ID, "resign_date", req.ResignDate)

	return s.mapEmployeeToResponse(emp), nil
}

func (s *EmployeeServiceImpl) mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var resignDate *string
	if emp.ResignDate != nil {
		d := emp.ResignDate.Format("2006-01-02")
		resignDate = &d
	}

	return employee.EmployeeResponse{
		ID:               emp.ID,
		EmployeeNo:       emp.EmployeeNo,
		Name:             emp.Name,
		ResidentNoMasked: s.crypto.MaskResidentNo(s.crypto.DecryptString(emp.ResidentNo)),
		DepartmentName:   emp.DepartmentName,
		PositionName:     emp.PositionName,
		HireDate:         emp.HireDate.Format("2006-01-02"),
		ResignDate:       resignDate,
		BaseSalary:       emp.BaseSalary,
		IsActive:         emp.IsActive,
		CreatedAt:        emp.CreatedAt,
		UpdatedAt:        emp.UpdatedAt,
	}
}
