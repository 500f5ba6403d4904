package repository

import (
	"context"

	"ecommerce/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleRepository stores role names and their assignment to users.
type RoleRepository interface {
	// Exists reports whether a role with the given name exists.
	Exists(ctx context.Context, name entity.Role) (bool, error)

	// Create inserts the role if it is missing. Creating an existing role is not an error.
	Create(ctx context.Context, name entity.Role) error

	// Assign links the role to the user. The role must exist.
	Assign(ctx context.Context, userID uuid.UUID, name entity.Role) error

	// RolesOf returns the user's roles in assignment order.
	RolesOf(ctx context.Context, userID uuid.UUID) (entity.Roles, error)
}
