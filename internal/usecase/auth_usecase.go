// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ecommerce/internal/domain/entity"

	"github.com/google/uuid"
)

// Login step messages. Each failed step ends the login with its own message.
const (
	LoginMsgUsernameRequired = "Username required"
	LoginMsgUsernameNotFound = "Username not found"
	LoginMsgPasswordRequired = "Password required"
	LoginMsgInvalidPassword  = "Invalid credentials"
	LoginMsgSucceeded        = "User logged in successfully"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Password string
	Name     string
	Role     string // Optional. Defaults to "User".
}

// LoginInput defines the data required for a user to log in.
// Password is a pointer so an absent password can be told apart from an empty one.
type LoginInput struct {
	Username string
	Password *string
}

// --- Output DTOs ---

// UserView is the public projection of a user. It never carries the password hash.
type UserView struct {
	ID       uuid.UUID
	Username string
	Name     string
	Role     entity.Role
}

// NewUserView projects a user entity.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.PrimaryRole(),
	}
}

// LoginOutput is the structured result of a login attempt.
type LoginOutput struct {
	Succeeded bool
	Message   string
	Token     string
	User      *UserView
}

// AuthUsecase defines registration and login.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*UserView, error)

	// Login returns an error only for storage or signing failures. Credential
	// problems are reported through LoginOutput.Succeeded and Message.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
