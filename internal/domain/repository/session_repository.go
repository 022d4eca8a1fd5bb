package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrSessionNotFound is returned for unknown, expired or evicted tokens.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository is the session store consumed by the session pipeline.
// Implementations own the records exclusively; callers only ever hold copies.
type SessionRepository interface {
	// Create allocates an unguessable token and persists an anonymous session.
	Create(ctx context.Context) (*entity.Session, error)

	// FindByToken returns the live session for token or ErrSessionNotFound.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// Update writes only the fields named by update, leaving the rest of the record intact.
	Update(ctx context.Context, token string, update entity.SessionUpdate) error

	// Delete removes the session. Deleting an absent session is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes sessions past their expiry and returns how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
