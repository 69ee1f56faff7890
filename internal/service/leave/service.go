package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/authz"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leaveRepo  leave.LeaveRepository
	authorizer authz.Authorizer
	clock      clock.Clock
}

func NewLeaveService(leaveRepo leave.LeaveRepository, authorizer authz.Authorizer, clk clock.Clock) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:  leaveRepo,
		authorizer: authorizer,
		clock:      clk,
	}
}

// RequestLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) RequestLeave(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	if end.Before(start) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to generate leave id: %w", err)
	}

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		ID:         id.String(),
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("leave requested", "leave_id", created.ID, "employee_id", employeeID, "type", created.LeaveType)

	return leave.NewLeaveResponse(created), nil
}

// ProcessApproval implements leave.LeaveService.
func (s *LeaveServiceImpl) ProcessApproval(ctx context.Context, leaveID string, req leave.ApprovalRequest, approverID string) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.LeaveResponse{}, err
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if err := l.Decide(req.NormalizedAction(), approverID, strings.TrimSpace(req.RejectReason), s.clock.Now()); err != nil {
		return leave.LeaveResponse{}, err
	}

	decided, err := s.leaveRepo.Decide(ctx, l)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveAlreadyProcessed) {
			return leave.LeaveResponse{}, err
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	slog.Info("leave decided", "leave_id", decided.ID, "status", decided.Status, "approver_id", approverID)

	return leave.NewLeaveResponse(decided), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, actor user.Actor) ([]leave.LeaveResponse, error) {
	var filter leave.LeaveFilter
	if !s.authorizer.Authorize(actor.Role, user.PermissionLeaveViewAll) {
		if !actor.HasEmployee() {
			return []leave.LeaveResponse{}, nil
		}
		employeeID := actor.EmployeeID
		filter.EmployeeID = &employeeID
	}

	leaves, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	out := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, leave.NewLeaveResponse(l))
	}
	return out, nil
}
