// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have at the camp.
type Role string

const (
	// RoleAdmin indicates a dashboard administrator.
	RoleAdmin Role = "admin"
	// RoleStaff indicates a camp staff member.
	RoleStaff Role = "staff"
	// RoleHousekeeper indicates a housekeeping staff member.
	RoleHousekeeper Role = "housekeeper"
	// RoleVisitor indicates a guest staying at the camp.
	RoleVisitor Role = "visitor"
)

// AllRoles lists the roles counted by user statistics, in display order.
var AllRoles = Roles{RoleAdmin, RoleStaff, RoleHousekeeper, RoleVisitor}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return AllRoles.Contains(r)
}

// DisplayName returns the capitalized label shown on the dashboard.
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleStaff:
		return "Staff"
	case RoleHousekeeper:
		return "Housekeeper"
	case RoleVisitor:
		return "Visitor"
	default:
		return string(r)
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
