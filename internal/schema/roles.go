package schema

import (
	"errors"
	"slices"
)

// ErrInvalidRole indicates a role value outside the closed ministry role set.
var ErrInvalidRole = errors.New("invalid role")

// Role identifies the ministry role a document is generated for.
// It doubles as the Playbook track value; both document types use the
// same closed set.
type Role string

// Valid ministry roles.
const (
	RoleTeacher      Role = "Teacher"
	RolePastorLeader Role = "Pastor/Leader"
	RoleYouthLeader  Role = "Youth Leader"
)

var roles = []Role{
	RoleTeacher,
	RolePastorLeader,
	RoleYouthLeader,
}

// Roles returns the list of valid ministry roles.
func Roles() []Role {
	return roles
}

// ParseRole validates a string as a known ministry role.
// Returns ErrInvalidRole if the value is not recognized.
func ParseRole(s string) (Role, error) {
	v := Role(s)
	if !slices.Contains(roles, v) {
		return "", ErrInvalidRole
	}
	return v, nil
}
