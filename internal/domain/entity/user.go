// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a person known to the camp: guests, staff, housekeepers and admins.
type User struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Image         string     `json:"image,omitempty"` // Storage reference or absolute URL.
	PasswordHash  string     `json:"-"`               // bcrypt hash, empty when the user has no password.
	Role          Role       `json:"role,omitempty"`
	DurationStart *time.Time `json:"duration_start,omitempty"` // Start of the stay window.
	DurationEnd   *time.Time `json:"duration_end,omitempty"`   // End of the stay window, nil for open-ended stays.
	IsOnSite      *bool      `json:"is_on_site,omitempty"`
	CampStaffID   string     `json:"camp_staff_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// HasPassword reports whether the user can sign in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// IsActiveVisitor reports whether the user is a visitor whose stay covers now.
func (u *User) IsActiveVisitor(now time.Time) bool {
	if u.Role != RoleVisitor || u.DurationStart == nil || u.DurationStart.After(now) {
		return false
	}

	return u.DurationEnd == nil || !u.DurationEnd.Before(now)
}

// UserPatch lists the user fields to change. Nil pointers are left untouched.
type UserPatch struct {
	Name          *string
	Email         *string
	Image         *string
	PasswordHash  *string
	Role          *Role
	DurationStart Nullable[time.Time]
	DurationEnd   Nullable[time.Time]
	IsOnSite      Nullable[bool]
	CampStaffID   *string
}
