package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide_Approve(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	l := Leave{ID: "l1", Status: StatusPending}

	require.NoError(t, l.Decide(ActionApprove, "hr-1", "", now))

	assert.Equal(t, StatusApproved, l.Status)
	require.NotNil(t, l.ApproverID)
	assert.Equal(t, "hr-1", *l.ApproverID)
	assert.Equal(t, now, *l.ApprovedAt)
	assert.Empty(t, l.RejectReason)
}

func TestDecide_RejectStoresReasonAndTimestamp(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	l := Leave{ID: "l1", Status: StatusPending}

	require.NoError(t, l.Decide(ActionReject, "hr-1", "peak season", now))

	assert.Equal(t, StatusRejected, l.Status)
	assert.Equal(t, "peak season", l.RejectReason)
	require.NotNil(t, l.ApprovedAt)
}

func TestDecide_RejectWithoutReasonLeavesPending(t *testing.T) {
	l := Leave{ID: "l1", Status: StatusPending}

	err := l.Decide(ActionReject, "hr-1", "  ", time.Now())
	assert.ErrorIs(t, err, ErrMissingRejectReason)
	assert.Equal(t, StatusPending, l.Status)
	assert.Nil(t, l.ApproverID)
}

func TestDecide_TerminalStatusesAreFinal(t *testing.T) {
	for _, status := range []LeaveStatus{StatusApproved, StatusRejected} {
		l := Leave{ID: "l1", Status: status}

		err := l.Decide(ActionApprove, "hr-1", "", time.Now())
		assert.ErrorIs(t, err, ErrLeaveAlreadyProcessed)
		assert.Equal(t, status, l.Status)
	}
}

func TestApprovalRequest_Validate(t *testing.T) {
	cases := []struct {
		name string
		req  ApprovalRequest
		want error
	}{
		{"approve", ApprovalRequest{Action: "approve"}, nil},
		{"approve uppercase", ApprovalRequest{Action: "APPROVE"}, nil},
		{"reject with reason", ApprovalRequest{Action: "reject", RejectReason: "no cover"}, nil},
		{"reject blank reason", ApprovalRequest{Action: "reject", RejectReason: "   "}, ErrMissingRejectReason},
		{"reject no reason", ApprovalRequest{Action: "reject"}, ErrMissingRejectReason},
		{"unknown action", ApprovalRequest{Action: "cancel"}, ErrInvalidAction},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestCreateLeaveRequest_Validate(t *testing.T) {
	valid := CreateLeaveRequest{LeaveType: "ANNUAL", StartDate: "2024-05-01", EndDate: "2024-05-03"}
	assert.NoError(t, valid.Validate())

	bad := CreateLeaveRequest{LeaveType: "VACATION", StartDate: "05/01/2024", EndDate: ""}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leave_type")
	assert.Contains(t, err.Error(), "start_date")
	assert.Contains(t, err.Error(), "end_date")
}
