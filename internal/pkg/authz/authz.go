package authz

import (
	"fmt"
	"log/slog"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
)

// A request carries the optional resource owner. Own-scoped grants match
// only when the caller's employee id equals the owner's.
const modelText = `
[request_definition]
r = sub, obj, caller, owner

[policy_definition]
p = sub, obj, scope

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && (p.scope == "any" || (r.caller != "" && r.caller == r.owner))
`

// Authorizer answers allow/deny for (role, operation, optional owner).
type Authorizer interface {
	// Authorize checks a grant that does not depend on resource ownership.
	Authorize(role user.Role, perm user.Permission) bool
	// AuthorizeOwner also accepts own-scoped grants when actor owns the resource.
	AuthorizeOwner(actor user.Actor, perm user.Permission, ownerEmployeeID string) bool
}

type casbinAuthorizer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewAuthorizer loads the capability table into a casbin enforcer.
func NewAuthorizer(table map[user.Role][]user.Grant) (Authorizer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse authorization model: %w", err)
	}
	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}
	for role, grants := range table {
		for _, g := range grants {
			if _, err := e.AddPolicy(string(role), string(g.Permission), string(g.Scope)); err != nil {
				return nil, fmt.Errorf("failed to add policy %s/%s: %w", role, g.Permission, err)
			}
		}
	}
	return &casbinAuthorizer{enforcer: e}, nil
}

func (a *casbinAuthorizer) Authorize(role user.Role, perm user.Permission) bool {
	return a.enforce(string(role), string(perm), "", "")
}

func (a *casbinAuthorizer) AuthorizeOwner(actor user.Actor, perm user.Permission, ownerEmployeeID string) bool {
	return a.enforce(string(actor.Role), string(perm), actor.EmployeeID, ownerEmployeeID)
}

func (a *casbinAuthorizer) enforce(role, perm, caller, owner string) bool {
	ok, err := a.enforcer.Enforce(role, perm, caller, owner)
	if err != nil {
		slog.Error("authorization check failed", "role", role, "permission", perm, "error", err)
		return false
	}
	return ok
}
