package employee

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ResignRequest struct {
	ResignDate string `json:"resign_date"`
}

func (r *ResignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ResignDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "resign_date",
			Message: "resign_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ResignDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "resign_date",
			Message: "resign_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string          `json:"id"`
	EmployeeNo       string          `json:"employee_no"`
	Name             string          `json:"name"`
	ResidentNoMasked string          `json:"resident_no_masked"`
	DepartmentName   string          `json:"department_name"`
	PositionName     string          `json:"position_name"`
	HireDate         string          `json:"hire_date"`
	ResignDate       *string         `json:"resign_date"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
