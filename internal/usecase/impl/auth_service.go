package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ecommerce/internal/delivery/context"
	"ecommerce/internal/domain/entity"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	"ecommerce/internal/domain/service"
	"ecommerce/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user, its role and the assignment in one transaction.
// Duplicate usernames are detected by the unique index, not by a prior lookup.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserView, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, errors.WithStack(domainerrors.ValidationError("username is required"))
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, errors.WithStack(domainerrors.ValidationError("password is required"))
	}

	role := entity.Role(strings.TrimSpace(input.Role))
	if !role.IsValid() {
		role = entity.RoleUser
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     username,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		roleRepo := repoFactory.RoleRepo()
		if err := roleRepo.Create(ctx, role); err != nil {
			return errors.Wrap(err, "failed to create role during registration")
		}
		if err := roleRepo.Assign(ctx, user.ID, role); err != nil {
			return errors.Wrap(err, "failed to assign role during registration")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Registration rejected, username taken", slog.String("username", username))
		} else {
			srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", username), slog.Any("error", err))
		}

		return nil, err
	}

	user.Roles = entity.Roles{role}
	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.String("role", role.String()))

	return usecase.NewUserView(user), nil
}

// Login checks each step in order and stops at the first failure.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return loginFailed(usecase.LoginMsgUsernameRequired), nil
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login failed", slog.String("username", username), slog.String("reason", "unknown username"))

			return loginFailed(usecase.LoginMsgUsernameNotFound), nil
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if input.Password == nil {
		return loginFailed(usecase.LoginMsgPasswordRequired), nil
	}

	if !srv.hasher.Check(*input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("username", username), slog.String("reason", "password mismatch"))

		return loginFailed(usecase.LoginMsgInvalidPassword), nil
	}

	token, err := srv.tokenService.IssueToken(service.Claims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Role:     user.PrimaryRole().String(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.LoginOutput{
		Succeeded: true,
		Message:   usecase.LoginMsgSucceeded,
		Token:     token,
		User:      usecase.NewUserView(user),
	}, nil
}

func loginFailed(message string) *usecase.LoginOutput {
	return &usecase.LoginOutput{Succeeded: false, Message: message}
}
