package user

type Role string

const (
	RoleAdmin     Role = "ADMIN"      // System administrator
	RoleHRManager Role = "HR_MANAGER" // Runs payroll and approves leave
	RoleEmployee  Role = "EMPLOYEE"   // Regular employee
)

// ParseRole rejects anything outside the closed role set.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleHRManager, RoleEmployee:
		return r, nil
	default:
		return "", ErrUnknownRole
	}
}

// IsHRManagerOrAbove reports whether the role may act on other employees' data.
func (r Role) IsHRManagerOrAbove() bool {
	switch r {
	case RoleAdmin, RoleHRManager:
		return true
	case RoleEmployee:
		return false
	default:
		return false
	}
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	// EmployeeID is empty for accounts without a linked employee record.
	EmployeeID string
	Role       Role
}

// HasEmployee reports whether the caller is linked to an employee.
func (a Actor) HasEmployee() bool {
	return a.EmployeeID != ""
}
