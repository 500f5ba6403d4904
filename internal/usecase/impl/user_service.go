package impl

import (
	"context"

	"ecommerce/internal/domain/repository"
	"ecommerce/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type userService struct {
	userRepo repository.UserRepository
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{userRepo: params.UserRepo}
}

func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserView, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	views := make([]*usecase.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, usecase.NewUserView(user))
	}

	return views, nil
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return usecase.NewUserView(user), nil
}
