package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve looks token up and falls back to a new anonymous session on a miss.
// A token that resolves to nothing is handled exactly like an absent one, and
// a token that could never have been issued is not sent to the store at all.
func (srv *sessionService) Resolve(ctx context.Context, token string) (*entity.Session, bool, error) {
	if token != "" && !util.IsSessionToken(token) {
		srv.log(ctx).Debug("Malformed session token, issuing a new session")
	} else if token != "" {
		session, err := srv.sessionRepo.FindByToken(ctx, token)
		if err == nil {
			return session, false, nil
		}
		if !errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Error("Failed to look up session", slog.Any("error", err))

			return nil, false, errors.Wrap(domainerrors.ErrSessionStoreUnavailable, err.Error())
		}
		srv.log(ctx).Debug("Unknown session token, issuing a new session")
	}

	session, err := srv.sessionRepo.Create(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to create session", slog.Any("error", err))

		return nil, false, errors.Wrap(domainerrors.ErrSessionStoreUnavailable, err.Error())
	}

	return session, true, nil
}

// CleanupExpired removes expired sessions.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := srv.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clean up expired sessions")
	}
	if removed > 0 {
		srv.log(ctx).Info("Removed expired sessions", slog.Int64("count", removed))
	}

	return removed, nil
}
