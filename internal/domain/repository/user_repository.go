// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ecommerce/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Username lookups compare the lowercased, trimmed value.
type UserRepository interface {
	// FindByID retrieves a single user with its roles.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user with its roles by normalized username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername reports whether the normalized username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new user. A duplicate username yields ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// List returns all users ordered by username.
	List(ctx context.Context) ([]*entity.User, error)
}
