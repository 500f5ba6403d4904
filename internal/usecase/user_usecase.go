package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UserUsecase defines read access to registered users.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*UserView, error)
	GetUser(ctx context.Context, id uuid.UUID) (*UserView, error)
}
