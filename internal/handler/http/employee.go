package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Resign(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	res, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, res)
}

// Resign implements EmployeeHandler.
func (h *employeeHandlerImpl) Resign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	var req employee.ResignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ResignEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	res, err := h.employeeService.Resign(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee resigned", res)
}
