package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of identities the API recognizes. Authorization
// decisions are made against this type, never raw strings.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleOrgAdmin   Role = "ORG_ADMIN"
	RoleHR         Role = "HR"
	RoleManager    Role = "MANAGER"
	RoleEmployee   Role = "EMPLOYEE"
)

func AllRoles() []Role {
	return []Role{RoleSuperAdmin, RoleOrgAdmin, RoleHR, RoleManager, RoleEmployee}
}

// ParseRole validates an untrusted role string. Callers must reject the
// request before touching the store when this fails.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleSuperAdmin:
		return RoleSuperAdmin, nil
	case RoleOrgAdmin:
		return RoleOrgAdmin, nil
	case RoleHR:
		return RoleHR, nil
	case RoleManager:
		return RoleManager, nil
	case RoleEmployee:
		return RoleEmployee, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string {
	return string(r)
}

// IsAdministrative reports whether the role lives in the admins table
// rather than the users table.
func (r Role) IsAdministrative() bool {
	return r == RoleSuperAdmin || r == RoleOrgAdmin
}
