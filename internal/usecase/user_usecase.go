// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UserUsecase defines the account operations. Register and Login bind the
// caller's session to the account; Logout discards the session.
type UserUsecase interface {
	Register(ctx context.Context, sessionToken string, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, sessionToken string, input LoginInput) (*entity.User, error)
	Logout(ctx context.Context, sessionToken string) error
	ResolvePrincipal(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
