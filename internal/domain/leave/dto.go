package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of ANNUAL, HALF, SICK, SPECIAL",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApprovalRequest struct {
	Action       string `json:"action"`
	RejectReason string `json:"reject_reason"`
}

// Validate enforces the reject reason before the workflow sees the request.
func (r *ApprovalRequest) Validate() error {
	switch Action(strings.ToLower(strings.TrimSpace(r.Action))) {
	case ActionApprove:
		return nil
	case ActionReject:
		if validator.IsEmpty(r.RejectReason) {
			return ErrMissingRejectReason
		}
		return nil
	default:
		return ErrInvalidAction
	}
}

// NormalizedAction returns the action after Validate accepted it.
func (r *ApprovalRequest) NormalizedAction() Action {
	return Action(strings.ToLower(strings.TrimSpace(r.Action)))
}

type LeaveResponse struct {
	ID           string      `json:"id"`
	EmployeeID   string      `json:"employee_id"`
	EmployeeName *string     `json:"employee_name,omitempty"`
	LeaveType    LeaveType   `json:"leave_type"`
	StartDate    string      `json:"start_date"`
	EndDate      string      `json:"end_date"`
	Reason       string      `json:"reason"`
	Status       LeaveStatus `json:"status"`
	ApproverID   *string     `json:"approver_id"`
	ApprovedAt   *time.Time  `json:"approved_at"`
	RejectReason string      `json:"reject_reason"`
	CreatedAt    time.Time   `json:"created_at"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Reason:       l.Reason,
		Status:       l.Status,
		ApproverID:   l.ApproverID,
		ApprovedAt:   l.ApprovedAt,
		RejectReason: l.RejectReason,
		CreatedAt:    l.CreatedAt,
	}
}
