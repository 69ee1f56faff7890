package user

type Permission string

const (
	// Attendance
	PermissionAttendanceCheck   Permission = "attendance.check"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"

	// Leave
	PermissionLeaveRequest Permission = "leave.request"
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Payroll
	PermissionPayrollCalculate Permission = "payroll.calculate"
	PermissionPayrollList      Permission = "payroll.list"
	PermissionPayrollView      Permission = "payroll.view"
	PermissionPayrollViewOwn   Permission = "payroll.view_own"
	PermissionPayrollConfirm   Permission = "payroll.confirm"
	PermissionPayrollLedger    Permission = "payroll.ledger"

	// Employee
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeResign Permission = "employee.resign"
)

// Scope limits a grant to the caller's own resources.
type Scope string

const (
	ScopeAny Scope = "any"
	ScopeOwn Scope = "own"
)

type Grant struct {
	Permission Permission
	Scope      Scope
}

func grantAny(p Permission) Grant { return Grant{Permission: p, Scope: ScopeAny} }
func grantOwn(p Permission) Grant { return Grant{Permission: p, Scope: ScopeOwn} }

// selfService is what every authenticated role may do for itself.
var selfService = []Grant{
	grantAny(PermissionAttendanceCheck),
	grantAny(PermissionAttendanceViewOwn),
	grantAny(PermissionLeaveRequest),
	grantAny(PermissionLeaveViewOwn),
	grantAny(PermissionPayrollViewOwn),
}

var hrManagement = []Grant{
	grantAny(PermissionLeaveViewAll),
	grantAny(PermissionLeaveApprove),
	grantAny(PermissionPayrollCalculate),
	grantAny(PermissionPayrollList),
	grantAny(PermissionPayrollView),
	grantAny(PermissionPayrollLedger),
	grantAny(PermissionEmployeeView),
}

// RolePermissions is the flat capability table. There is no inheritance:
// every role lists each grant it holds.
var RolePermissions = map[Role][]Grant{
	RoleAdmin: concat(selfService, hrManagement, []Grant{
		grantAny(PermissionPayrollConfirm),
		grantAny(PermissionEmployeeResign),
	}),
	RoleHRManager: concat(selfService, hrManagement),
	RoleEmployee: concat(selfService, []Grant{
		grantOwn(PermissionPayrollView),
	}),
}

func concat(groups ...[]Grant) []Grant {
	var out []Grant
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
