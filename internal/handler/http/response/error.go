package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
)

type errorMapping struct {
	err     error
	status  int
	code    string
	message string
}

var errorMappings = []errorMapping{
	// Attendance
	{attendance.ErrAlreadyCheckedIn, http.StatusConflict, "ALREADY_CHECKED_IN", "Already checked in today"},
	{attendance.ErrAlreadyCheckedOut, http.StatusConflict, "ALREADY_CHECKED_OUT", "Already checked out today"},
	{attendance.ErrNoCheckInToday, http.StatusBadRequest, "NO_CHECK_IN_TODAY", "No check-in found for today"},
	{attendance.ErrAttendanceNotFound, http.StatusNotFound, "ATTENDANCE_NOT_FOUND", "Attendance record not found"},

	// Leave
	{leave.ErrLeaveNotFound, http.StatusNotFound, "LEAVE_NOT_FOUND", "Leave request not found"},
	{leave.ErrInvalidDateRange, http.StatusBadRequest, "INVALID_DATE_RANGE", "End date must not be before start date"},
	{leave.ErrLeaveAlreadyProcessed, http.StatusConflict, "LEAVE_ALREADY_PROCESSED", "Leave request already processed"},
	{leave.ErrMissingRejectReason, http.StatusBadRequest, "MISSING_REJECT_REASON", "Reject reason is required"},
	{leave.ErrInvalidAction, http.StatusBadRequest, "INVALID_ACTION", "Action must be approve or reject"},

	// Payroll
	{payroll.ErrPayrollRecordNotFound, http.StatusNotFound, "PAYROLL_NOT_FOUND", "Payroll record not found"},
	{payroll.ErrAlreadyCalculated, http.StatusConflict, "PAYROLL_ALREADY_CALCULATED", "Payroll already calculated for this period"},
	{payroll.ErrAlreadyConfirmed, http.StatusConflict, "PAYROLL_ALREADY_CONFIRMED", "Payroll already confirmed"},
	{payroll.ErrUnsupportedFormat, http.StatusBadRequest, "UNSUPPORTED_FORMAT", "Format must be xlsx or pdf"},
	{validator.ErrInvalidMonth, http.StatusBadRequest, "INVALID_MONTH", "Month must be between 1 and 12"},

	// Employee
	{employee.ErrEmployeeNotFound, http.StatusNotFound, "EMPLOYEE_NOT_FOUND", "Employee not found"},
	{employee.ErrEmployeeInactive, http.StatusConflict, "EMPLOYEE_INACTIVE", "Employee is no longer active"},
	{employee.ErrResignBeforeHire, http.StatusBadRequest, "RESIGN_BEFORE_HIRE", "Resign date must not be before hire date"},
	{employee.ErrEmployeeIDRequired, http.StatusBadRequest, "EMPLOYEE_ID_REQUIRED", "Employee ID is required"},

	// Access
	{user.ErrForbidden, http.StatusForbidden, "FORBIDDEN", "Access denied"},
	{user.ErrEmployeeLinkRequired, http.StatusForbidden, "EMPLOYEE_LINK_REQUIRED", "User is not linked to an employee"},
	{user.ErrUnknownRole, http.StatusForbidden, "FORBIDDEN", "Unknown role"},

	// Report
	{report.ErrReportGenerationFailed, http.StatusInternalServerError, "REPORT_GENERATION_FAILED", "Failed to generate report"},
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			Fail(w, m.status, m.code, m.message, nil)
			return
		}
	}

	slog.Error("unhandled error", "error", err)
	InternalServerError(w, "An unexpected error occurred")
}
