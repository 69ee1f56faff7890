package leave

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/authz"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	mu       sync.Mutex
	leaves   map[string]leave.Leave
	seq      int
	decideFn func(leave.Leave) (leave.Leave, error)
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: map[string]leave.Leave{}}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	l.CreatedAt = time.Date(2024, 1, 1, 0, 0, f.seq, 0, time.UTC)
	f.leaves[l.ID] = l
	return l, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (f *fakeLeaveRepo) Decide(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	if f.decideFn != nil {
		return f.decideFn(l)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.leaves[l.ID].Status != leave.StatusPending {
		return leave.Leave{}, leave.ErrLeaveAlreadyProcessed
	}
	f.leaves[l.ID] = l
	return l, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.Leave
	for _, l := range f.leaves {
		if filter.EmployeeID != nil && l.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func newLeaveService(t *testing.T) (leave.LeaveService, *fakeLeaveRepo, *clock.Fixed) {
	t.Helper()
	repo := newFakeLeaveRepo()
	authorizer, err := authz.NewAuthorizer(user.RolePermissions)
	require.NoError(t, err)
	clk := &clock.Fixed{T: time.Date(2024, 4, 20, 14, 0, 0, 0, time.UTC)}
	return NewLeaveService(repo, authorizer, clk), repo, clk
}

func annual(start, end string) leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{LeaveType: "ANNUAL", StartDate: start, EndDate: end, Reason: "trip"}
}

func TestRequestLeave(t *testing.T) {
	svc, _, _ := newLeaveService(t)
	ctx := context.Background()

	res, err := svc.RequestLeave(ctx, "emp-1", annual("2024-05-01", "2024-05-03"))
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, res.Status)
	assert.Equal(t, "2024-05-01", res.StartDate)
	assert.Nil(t, res.ApproverID)

	single, err := svc.RequestLeave(ctx, "emp-1", annual("2024-06-01", "2024-06-01"))
	require.NoError(t, err)
	assert.Equal(t, single.StartDate, single.EndDate)
}

func TestRequestLeave_EndBeforeStart(t *testing.T) {
	svc, repo, _ := newLeaveService(t)

	_, err := svc.RequestLeave(context.Background(), "emp-1", annual("2024-05-03", "2024-05-01"))
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
	assert.Empty(t, repo.leaves)
}

func TestProcessApproval_Approve(t *testing.T) {
	svc, _, clk := newLeaveService(t)
	ctx := context.Background()

	req, err := svc.RequestLeave(ctx, "emp-1", annual("2024-05-01", "2024-05-03"))
	require.NoError(t, err)

	res, err := svc.ProcessApproval(ctx, req.ID, leave.ApprovalRequest{Action: "approve"}, "hr-user")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, res.Status)
	assert.Equal(t, "hr-user", *res.ApproverID)
	assert.Equal(t, clk.Now(), *res.ApprovedAt)
}

func TestProcessApproval_Reject(t *testing.T) {
	svc, _, _ := newLeaveService(t)
	ctx := context.Background()

	req, err := svc.RequestLeave(ctx, "emp-1", annual("2024-05-01", "2024-05-03"))
	require.NoError(t, err)

	_, err = svc.ProcessApproval(ctx, req.ID, leave.ApprovalRequest{Action: "reject"}, "hr-user")
	assert.ErrorIs(t, err, leave.ErrMissingRejectReason)

	res, err := svc.ProcessApproval(ctx, req.ID, leave.ApprovalRequest{Action: "reject", RejectReason: " month-end close "}, "hr-user")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, res.Status)
	assert.Equal(t, "month-end close", res.RejectReason)
	assert.NotNil(t, res.ApprovedAt)
}

func TestProcessApproval_OnlyOnce(t *testing.T) {
	svc, _, _ := newLeaveService(t)
	ctx := context.Background()

	req, err := svc.RequestLeave(ctx, "emp-1", annual("2024-05-01", "2024-05-03"))
	require.NoError(t, err)
	_, err = svc.ProcessApproval(ctx, req.ID, leave.ApprovalRequest{Action: "approve"}, "hr-user")
	require.NoError(t, err)

	_, err = svc.ProcessApproval(ctx, req.ID, leave.ApprovalRequest{Action: "approve"}, "hr-user")
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	_, err = svc.ProcessApproval(ctx, req.ID, leave.ApprovalRequest{Action: "reject", RejectReason: "x"}, "hr-user")
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestProcessApproval_LosingRace(t *testing.T) {
	svc, repo, _ := newLeaveService(t)
	ctx := context.Background()

	req, err := svc.RequestLeave(ctx, "emp-1", annual("2024-05-01", "2024-05-03"))
	require.NoError(t, err)

	repo.decideFn = func(leave.Leave) (leave.Leave, error) {
		return leave.Leave{}, leave.ErrLeaveAlreadyProcessed
	}
	_, err = svc.ProcessApproval(ctx, req.ID, leave.ApprovalRequest{Action: "approve"}, "hr-user")
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestProcessApproval_NotFound(t *testing.T) {
	svc, _, _ := newLeaveService(t)

	_, err := svc.ProcessApproval(context.Background(), "missing", leave.ApprovalRequest{Action: "approve"}, "hr-user")
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestListLeaves_ScopedByRole(t *testing.T) {
	svc, _, _ := newLeaveService(t)
	ctx := context.Background()

	_, err := svc.RequestLeave(ctx, "emp-1", annual("2024-05-01", "2024-05-01"))
	require.NoError(t, err)
	_, err = svc.RequestLeave(ctx, "emp-2", annual("2024-05-02", "2024-05-02"))
	require.NoError(t, err)
	latest, err := svc.RequestLeave(ctx, "emp-1", annual("2024-05-03", "2024-05-03"))
	require.NoError(t, err)

	all, err := svc.ListLeaves(ctx, user.Actor{UserID: "hr", Role: user.RoleHRManager})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, latest.ID, all[0].ID)

	own, err := svc.ListLeaves(ctx, user.Actor{UserID: "u1", EmployeeID: "emp-1", Role: user.RoleEmployee})
	require.NoError(t, err)
	assert.Len(t, own, 2)
	for _, l := range own {
		assert.Equal(t, "emp-1", l.EmployeeID)
	}

	unlinked, err := svc.ListLeaves(ctx, user.Actor{UserID: "u9", Role: user.RoleEmployee})
	require.NoError(t, err)
	assert.Empty(t, unlinked)
}
