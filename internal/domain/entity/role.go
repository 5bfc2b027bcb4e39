// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleClient orders food.
	RoleClient Role = "Client"
	// RoleOwner owns restaurants.
	RoleOwner Role = "Owner"
	// RoleDelivery delivers orders.
	RoleDelivery Role = "Delivery"
	// RoleAny is a guard wildcard admitting any authenticated user. It is never stored.
	RoleAny Role = "Any"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r can be assigned to a user.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleDelivery:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Admits reports whether a user holding role passes a guard declared with rs.
func (rs Roles) Admits(role Role) bool {
	return rs.Contains(RoleAny) || rs.Contains(role)
}

// AssignableRoles lists the roles a user can hold.
func AssignableRoles() Roles {
	return Roles{RoleClient, RoleOwner, RoleDelivery}
}
