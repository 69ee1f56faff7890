package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireEmployee(w, r)
	if !ok {
		return
	}

	res, err := h.attendanceService.CheckIn(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", res)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireEmployee(w, r)
	if !ok {
		return
	}

	res, err := h.attendanceService.CheckOut(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", res)
}

// Monthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireEmployee(w, r)
	if !ok {
		return
	}

	filter, err := attendance.ParseMonthlyFilter(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.MonthlyRecords(r.Context(), actor.EmployeeID, filter.Year, filter.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
