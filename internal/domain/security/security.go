package security

import (
	"errors"
	"fmt"
	"strings"
)

type Role string

const (
	RoleCouncilAdmin    Role = "Council.Admin"
	RoleCouncilEmployee Role = "Council.Employee"
	RoleSponsoringAdmin Role = "SponsoringOrganization.Admin"
	RoleUnitAdmin       Role = "Unit.Admin"
	RoleGuardian        Role = "Guardian"
)

var ErrInsufficientPermission = errors.New("insufficient permission")

// AnyStaff is the role set allowed to read and look up people records.
var AnyStaff = []Role{RoleCouncilAdmin, RoleCouncilEmployee, RoleUnitAdmin, RoleSponsoringAdmin, RoleGuardian}

// Staff is AnyStaff without Guardian: roles that manage records on behalf of others.
var Staff = []Role{RoleCouncilAdmin, RoleCouncilEmployee, RoleUnitAdmin, RoleSponsoringAdmin}

// Actor is the user performing an operation, passed explicitly to every call.
type Actor struct {
	UserID     string
	GuardianID string
	Roles      []Role
}

func (a Actor) Has(r Role) bool {
	for _, have := range a.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// Permits reports whether a holds any of the required roles. Council admins pass every check.
// An empty required set permits everyone.
func (a Actor) Permits(required ...Role) bool {
	if len(required) == 0 || a.Has(RoleCouncilAdmin) {
		return true
	}
	for _, r := range required {
		if a.Has(r) {
			return true
		}
	}
	return false
}

// Require fails with ErrInsufficientPermission when a holds none of the required roles.
func Require(a Actor, op string, required ...Role) error {
	if a.Permits(required...) {
		return nil
	}
	names := make([]string, len(required))
	for i, r := range required {
		names[i] = string(r)
	}
	return fmt.Errorf("%w: %s requires one of [%s]", ErrInsufficientPermission, op, strings.Join(names, ", "))
}

// ParseRoles keeps known role tags and drops the rest.
func ParseRoles(raw []string) []Role {
	out := make([]Role, 0, len(raw))
	for _, s := range raw {
		switch r := Role(s); r {
		case RoleCouncilAdmin, RoleCouncilEmployee, RoleSponsoringAdmin, RoleUnitAdmin, RoleGuardian:
			out = append(out, r)
		}
	}
	return out
}
