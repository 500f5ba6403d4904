// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role is the name of a role a user can hold. Roles are created lazily, so any
// non-blank name is accepted.
type Role string

const (
	// RoleAdmin grants access to catalog and user management.
	RoleAdmin Role = "Admin"
	// RoleUser is assigned when registration does not name a role.
	RoleUser Role = "User"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role carries a usable name.
func (r Role) IsValid() bool {
	return strings.TrimSpace(string(r)) != ""
}

// Roles is the ordered list of roles assigned to a user. The first entry is the primary role.
type Roles []Role

// Primary returns the first assigned role, or the empty role when none is assigned.
func (rs Roles) Primary() Role {
	if len(rs) == 0 {
		return ""
	}

	return rs[0]
}

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out blank names.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(strings.TrimSpace(s))
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
