package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/authz"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type PayrollServiceImpl struct {
	tx             database.Transactor
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	authorizer     authz.Authorizer
	clock          clock.Clock
}

func NewPayrollService(
	tx database.Transactor,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	authorizer authz.Authorizer,
	clk clock.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:             tx,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		authorizer:     authorizer,
		clock:          clk,
	}
}

// Calculate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculateRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	var created payroll.Record
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return err
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}
		if !emp.IsActive {
			return employee.ErrEmployeeInactive
		}

		records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, emp.ID, req.Year, req.Month)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}

		overtimeMinutes := 0
		for _, r := range records {
			overtimeMinutes += r.OvertimeMinutes
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate payroll id: %w", err)
		}

		b := Calculate(emp.BaseSalary, overtimeMinutes)
		record := payroll.Record{
			ID:                  id.String(),
			EmployeeID:          emp.ID,
			Year:                req.Year,
			Month:               req.Month,
			BaseSalary:          b.BaseSalary,
			MealAllowance:       b.MealAllowance,
			TransportAllowance:  b.TransportAllowance,
			OvertimePay:         b.OvertimePay,
			GrossPay:            b.GrossPay,
			NationalPension:     b.NationalPension,
			HealthInsurance:     b.HealthInsurance,
			LongTermCare:        b.LongTermCare,
			EmploymentInsurance: b.EmploymentInsurance,
			IncomeTax:           b.IncomeTax,
			LocalIncomeTax:      b.LocalIncomeTax,
			TotalDeduction:      b.TotalDeduction,
			NetPay:              b.NetPay,
			OvertimeMinutes:     b.OvertimeMinutes,
			Status:              payroll.StatusDraft,
		}

		created, err = s.payrollRepo.Create(ctx, record)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case "23505": // unique_violation
					return payroll.ErrAlreadyCalculated
				}
			}
			return fmt.Errorf("failed to create payroll record: %w", err)
		}

		created.EmployeeNo = emp.EmployeeNo
		created.EmployeeName = emp.Name
		created.DepartmentName = emp.DepartmentName
		created.PositionName = emp.PositionName
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	slog.Info("payroll calculated",
		"payroll_id", created.ID,
		"employee_id", created.EmployeeID,
		"year", created.Year,
		"month", created.Month,
		"overtime_minutes", created.OvertimeMinutes,
		"net_pay", created.NetPay.String(),
	)

	return payroll.NewPayrollResponse(created), nil
}

// Confirm implements payroll.PayrollService.
func (s *PayrollServiceImpl) Confirm(ctx context.Context, id string, confirmedBy string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.PayrollResponse{}, err
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	if err := record.Confirm(confirmedBy, s.clock.Now()); err != nil {
		return payroll.PayrollResponse{}, err
	}

	confirmed, err := s.payrollRepo.Confirm(ctx, record)
	if err != nil {
		if errors.Is(err, payroll.ErrAlreadyConfirmed) {
			return payroll.PayrollResponse{}, err
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to confirm payroll record: %w", err)
	}

	slog.Info("payroll confirmed", "payroll_id", confirmed.ID, "confirmed_by", confirmedBy)

	return payroll.NewPayrollResponse(confirmed), nil
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string, actor user.Actor) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.PayrollResponse{}, err
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	if !s.authorizer.AuthorizeOwner(actor, user.PermissionPayrollView, record.EmployeeID) {
		return payroll.PayrollResponse{}, user.ErrForbidden
	}

	return payroll.NewPayrollResponse(record), nil
}

// ListPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	return toResponses(records), nil
}

// MyPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) MyPayrolls(ctx context.Context, actor user.Actor) ([]payroll.PayrollResponse, error) {
	if !actor.HasEmployee() {
		return []payroll.PayrollResponse{}, nil
	}

	employeeID := actor.EmployeeID
	records, err := s.payrollRepo.List(ctx, payroll.ListFilter{EmployeeID: &employeeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list own payroll records: %w", err)
	}
	return toResponses(records), nil
}

// Ledger implements payroll.PayrollService.
func (s *PayrollServiceImpl) Ledger(ctx context.Context, period payroll.Period) (payroll.LedgerResponse, error) {
	records, err := s.payrollRepo.ListForLedger(ctx, period.Year, period.Month)
	if err != nil {
		return payroll.LedgerResponse{}, fmt.Errorf("failed to load ledger records: %w", err)
	}
	return BuildLedger(period, records, s.clock.Now()), nil
}

func toResponses(records []payroll.Record) []payroll.PayrollResponse {
	out := make([]payroll.PayrollResponse, 0, len(records))
	for _, r := range records {
		out = append(out, payroll.NewPayrollResponse(r))
	}
	return out
}
