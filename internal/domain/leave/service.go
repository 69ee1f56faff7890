package leave

import (
	"context"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
)

type LeaveService interface {
	// RequestLeave files a PENDING leave for the employee
	RequestLeave(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)

	// ProcessApproval approves or rejects a pending leave
	ProcessApproval(ctx context.Context, leaveID string, req ApprovalRequest, approverID string) (LeaveResponse, error)

	// ListLeaves returns every leave for approvers and the caller's own otherwise
	ListLeaves(ctx context.Context, actor user.Actor) ([]LeaveResponse, error)
}
