// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in to the catalog.
type User struct {
	ID           uuid.UUID // Opaque identifier, generated on insert.
	Username     string    // Login name as typed at registration. Unique after normalization.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash. Never leaves the service layer.
	Roles        Roles     // Assigned roles in assignment order.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// PrimaryRole returns the role carried in access tokens.
func (u *User) PrimaryRole() Role {
	return u.Roles.Primary()
}
