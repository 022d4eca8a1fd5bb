package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves the session's user and gates protected routes.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{userUC: userUC, logger: logger}
}

// Authenticate attaches the principal when the session is bound to an
// existing user. A binding to a deleted user leaves the request
// unauthenticated. Neither the session nor the store is modified.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		state := deliverycontext.GetRequestState(ctx)

		session := state.Session()
		if session.IsAnonymous() {
			return next(c)
		}

		user, err := m.userUC.ResolvePrincipal(ctx, *session.UserID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Session bound to unknown user",
					slog.String("userID", session.UserID.String()))

				return next(c)
			}

			return errors.WithStack(err)
		}

		state = state.WithPrincipal(user)
		c.SetRequest(req.WithContext(deliverycontext.WithRequestState(ctx, state)))

		return next(c)
	}
}

// RequireAuth rejects requests without a principal before the handler runs.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !deliverycontext.GetRequestState(c.Request().Context()).IsAuthenticated() {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the principal has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetRequestState(c.Request().Context()).Principal()
			if principal == nil {
				return domainerrors.ErrUnauthenticated
			}
			if !principal.HasRole(requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole.String())
			}

			return next(c)
		}
	}
}
