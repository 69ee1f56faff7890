package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Ledger(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Calculate implements PayrollHandler.
func (h *payrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CalculatePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	res, err := h.payrollService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll calculated", res)
}

// List implements PayrollHandler.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := payroll.ParseListFilter(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.payrollService.ListPayrolls(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// My implements PayrollHandler.
func (h *payrollHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	records, err := h.payrollService.MyPayrolls(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Get implements PayrollHandler.
func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, payroll.ErrPayrollRecordNotFound)
	if !ok {
		return
	}

	res, err := h.payrollService.GetPayroll(r.Context(), id, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, res)
}

// Confirm implements PayrollHandler.
func (h *payrollHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, payroll.ErrPayrollRecordNotFound)
	if !ok {
		return
	}

	res, err := h.payrollService.Confirm(r.Context(), id, actor.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll confirmed", res)
}

// Ledger implements PayrollHandler.
func (h *payrollHandlerImpl) Ledger(w http.ResponseWriter, r *http.Request) {
	period, err := payroll.ParsePeriod(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	ledger, err := h.payrollService.Ledger(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ledger)
}
