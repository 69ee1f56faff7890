package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	EmployeeNo string
	Name       string
	// ResidentNo holds the encrypted resident registration number
	ResidentNo     string
	DepartmentID   string
	DepartmentName string
	PositionID     string
	PositionName   string
	HireDate       time.Time
	ResignDate     *time.Time
	BaseSalary     decimal.Decimal
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
