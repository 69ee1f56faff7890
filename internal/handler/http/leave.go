package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Create implements LeaveHandler.
func (l *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireEmployee(w, r)
	if !ok {
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	res, err := l.leaveService.RequestLeave(r.Context(), actor.EmployeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", res)
}

// List implements LeaveHandler.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	leaves, err := l.leaveService.ListLeaves(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// Process implements LeaveHandler.
func (l *LeaveHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	leaveID, ok := pathID(w, r, leave.ErrLeaveNotFound)
	if !ok {
		return
	}

	var req leave.ApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ProcessLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	res, err := l.leaveService.ProcessApproval(r.Context(), leaveID, req, actor.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+string(res.Status), res)
}
