package payroll

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// REQUESTS
// ========================================

type CalculateRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *CalculateRequest) Validate() error {
	if !validator.IsValidMonth(r.Month) {
		return validator.ErrInvalidMonth
	}

	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Period struct {
	Year  int
	Month int
}

func ParsePeriod(yearStr, monthStr string) (Period, error) {
	year, month, err := validator.ParseYearMonth(yearStr, monthStr)
	if err != nil {
		return Period{}, err
	}
	return Period{Year: year, Month: month}, nil
}

// ParseListFilter accepts optional year and month query values.
func ParseListFilter(yearStr, monthStr string) (ListFilter, error) {
	var filter ListFilter

	if strings.TrimSpace(monthStr) != "" {
		_, month, err := validator.ParseYearMonth("2000", monthStr)
		if err != nil {
			return ListFilter{}, err
		}
		filter.Month = &month
	}

	if strings.TrimSpace(yearStr) != "" {
		year, _, err := validator.ParseYearMonth(yearStr, "1")
		if err != nil {
			return ListFilter{}, err
		}
		filter.Year = &year
	}

	return filter, nil
}

type ExportFormat string

const (
	FormatXLSX ExportFormat = "xlsx"
	FormatPDF  ExportFormat = "pdf"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXLSX, FormatPDF:
		return f, nil
	case "":
		return FormatXLSX, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// ========================================
// RESPONSES
// ========================================

type PayrollResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	DepartmentName string `json:"department_name"`
	Year           int    `json:"year"`
	Month          int    `json:"month"`

	BaseSalary         decimal.Decimal `json:"base_salary"`
	MealAllowance      decimal.Decimal `json:"meal_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	GrossPay           decimal.Decimal `json:"gross_pay"`

	NationalPension     decimal.Decimal `json:"national_pension"`
	HealthInsurance     decimal.Decimal `json:"health_insurance"`
	LongTermCare        decimal.Decimal `json:"long_term_care"`
	EmploymentInsurance decimal.Decimal `json:"employment_insurance"`
	IncomeTax           decimal.Decimal `json:"income_tax"`
	LocalIncomeTax      decimal.Decimal `json:"local_income_tax"`
	TotalDeduction      decimal.Decimal `json:"total_deduction"`

	NetPay          decimal.Decimal `json:"net_pay"`
	OvertimeMinutes int             `json:"overtime_minutes"`

	Status      Status     `json:"status"`
	ConfirmedBy *string    `json:"confirmed_by"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewPayrollResponse(r Record) PayrollResponse {
	return PayrollResponse{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		EmployeeName:        r.EmployeeName,
		DepartmentName:      r.DepartmentName,
		Year:                r.Year,
		Month:               r.Month,
		BaseSalary:          r.BaseSalary,
		MealAllowance:       r.MealAllowance,
		TransportAllowance:  r.TransportAllowance,
		OvertimePay:         r.OvertimePay,
		GrossPay:            r.GrossPay,
		NationalPension:     r.NationalPension,
		HealthInsurance:     r.HealthInsurance,
		LongTermCare:        r.LongTermCare,
		EmploymentInsurance: r.EmploymentInsurance,
		IncomeTax:           r.IncomeTax,
		LocalIncomeTax:      r.LocalIncomeTax,
		TotalDeduction:      r.TotalDeduction,
		NetPay:              r.NetPay,
		OvertimeMinutes:     r.OvertimeMinutes,
		Status:              r.Status,
		ConfirmedBy:         r.ConfirmedBy,
		ConfirmedAt:         r.ConfirmedAt,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

type LedgerRow struct {
	ID           string `json:"id"`
	EmployeeNo   string `json:"employee_no"`
	EmployeeName string `json:"employee_name"`
	PositionName string `json:"position_name"`

	BaseSalary         decimal.Decimal `json:"base_salary"`
	MealAllowance      decimal.Decimal `json:"meal_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	GrossPay           decimal.Decimal `json:"gross_pay"`

	NationalPension     decimal.Decimal `json:"national_pension"`
	HealthInsurance     decimal.Decimal `json:"health_insurance"`
	LongTermCare        decimal.Decimal `json:"long_term_care"`
	EmploymentInsurance decimal.Decimal `json:"employment_insurance"`
	IncomeTax           decimal.Decimal `json:"income_tax"`
	LocalIncomeTax      decimal.Decimal `json:"local_income_tax"`
	TotalDeduction      decimal.Decimal `json:"total_deduction"`

	NetPay          decimal.Decimal `json:"net_pay"`
	OvertimeMinutes int             `json:"overtime_minutes"`
	Status          Status          `json:"status"`
}

func NewLedgerRow(r Record) LedgerRow {
	return LedgerRow{
		ID:                  r.ID,
		EmployeeNo:          r.EmployeeNo,
		EmployeeName:        r.EmployeeName,
		PositionName:        r.PositionName,
		BaseSalary:          r.BaseSalary,
		MealAllowance:       r.MealAllowance,
		TransportAllowance:  r.TransportAllowance,
		OvertimePay:         r.OvertimePay,
		GrossPay:            r.GrossPay,
		NationalPension:     r.NationalPension,
		HealthInsurance:     r.HealthInsurance,
		LongTermCare:        r.LongTermCare,
		EmploymentInsurance: r.EmploymentInsurance,
		IncomeTax:           r.IncomeTax,
		LocalIncomeTax:      r.LocalIncomeTax,
		TotalDeduction:      r.TotalDeduction,
		NetPay:              r.NetPay,
		OvertimeMinutes:     r.OvertimeMinutes,
		Status:              r.Status,
	}
}

type LedgerDepartment struct {
	Name              string          `json:"name"`
	Count             int             `json:"count"`
	SubtotalGrossPay  decimal.Decimal `json:"subtotal_gross_pay"`
	SubtotalDeduction decimal.Decimal `json:"subtotal_deduction"`
	SubtotalNetPay    decimal.Decimal `json:"subtotal_net_pay"`
	Records           []LedgerRow     `json:"records"`
}

type LedgerResponse struct {
	Year           int                `json:"year"`
	Month          int                `json:"month"`
	GeneratedAt    time.Time          `json:"generated_at"`
	TotalCount     int                `json:"total_count"`
	TotalGrossPay  decimal.Decimal    `json:"total_gross_pay"`
	TotalDeduction decimal.Decimal    `json:"total_deduction"`
	TotalNetPay    decimal.Decimal    `json:"total_net_pay"`
	Departments    []LedgerDepartment `json:"departments"`
}
