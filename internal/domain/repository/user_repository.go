// Package repository declares the persistence ports used by the usecases.
// Adapters live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned for unknown ids and emails.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores customer and admin accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create fills in a generated id when none is set. A taken email fails with ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
}
