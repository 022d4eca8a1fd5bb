package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase resolves the session of each request.
type SessionUsecase interface {
	// Resolve returns the live session for token. An empty, unknown or
	// expired token yields a fresh anonymous session and created=true.
	Resolve(ctx context.Context, token string) (session *entity.Session, created bool, err error)

	// CleanupExpired removes expired sessions and returns how many were removed.
	CleanupExpired(ctx context.Context) (int64, error)
}
