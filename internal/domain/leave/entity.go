package leave

import (
	"strings"
	"time"
)

type LeaveType string

const (
	LeaveTypeAnnual  LeaveType = "ANNUAL"
	LeaveTypeHalf    LeaveType = "HALF"
	LeaveTypeSick    LeaveType = "SICK"
	LeaveTypeSpecial LeaveType = "SPECIAL"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeHalf, LeaveTypeSick, LeaveTypeSpecial:
		return true
	default:
		return false
	}
}

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "PENDING"
	StatusApproved LeaveStatus = "APPROVED"
	StatusRejected LeaveStatus = "REJECTED"
)

// IsTerminal reports whether no further transition is allowed.
func (s LeaveStatus) IsTerminal() bool {
	switch s {
	case StatusApproved, StatusRejected:
		return true
	case StatusPending:
		return false
	default:
		return true
	}
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Leave is an employee's leave request.
type Leave struct {
	ID           string
	EmployeeID   string
	LeaveType    LeaveType
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       LeaveStatus
	ApproverID   *string
	ApprovedAt   *time.Time
	RejectReason string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeName *string
}

// Decide moves a pending leave to its terminal status.
// approved_at is stamped for rejections too.
func (l *Leave) Decide(action Action, approverID string, rejectReason string, now time.Time) error {
	if l.Status != StatusPending {
		return ErrLeaveAlreadyProcessed
	}

	switch action {
	case ActionApprove:
		l.Status = StatusApproved
	case ActionReject:
		if strings.TrimSpace(rejectReason) == "" {
			return ErrMissingRejectReason
		}
		l.Status = StatusRejected
		l.RejectReason = rejectReason
	default:
		return ErrInvalidAction
	}

	l.ApproverID = &approverID
	l.ApprovedAt = &now
	return nil
}
