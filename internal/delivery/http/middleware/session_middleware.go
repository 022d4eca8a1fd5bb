package middleware

import (
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/cookie"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware guarantees every request carries a session. Requests
// without a live session cookie get a new anonymous session and exactly one
// Set-Cookie header.
type SessionMiddleware struct {
	sessionUC  usecase.SessionUsecase
	cookieName string
	ttl        time.Duration
	secure     bool
	logger     *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessionUC usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUC:  sessionUC,
		cookieName: cfg.Session.CookieName,
		ttl:        cfg.Session.TTL,
		secure:     cfg.Session.Secure,
		logger:     logger,
	}
}

// Handle resolves the session and appends it to the request state. It must
// run after cookie.Middleware.
func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		state := deliverycontext.GetRequestState(ctx)

		token, _ := state.Cookie(m.cookieName)
		session, created, err := m.sessionUC.Resolve(ctx, token)
		if err != nil {
			return errors.WithStack(err)
		}

		if created {
			if err := cookie.Set(c, m.cookieName, session.ID, m.CookieOptions()); err != nil {
				return errors.Wrap(err, "failed to write session cookie")
			}
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Issued new session")
		}

		state = state.WithSession(session)
		c.SetRequest(req.WithContext(deliverycontext.WithRequestState(ctx, state)))

		return next(c)
	}
}

// CookieOptions are the attributes of the session cookie.
func (m *SessionMiddleware) CookieOptions() cookie.Options {
	return cookie.Options{
		MaxAge:   int(m.ttl / time.Second),
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: cookie.SameSiteLax,
	}
}

// ExpireCookie tells the client to drop the session cookie.
func (m *SessionMiddleware) ExpireCookie(c echo.Context) error {
	opts := m.CookieOptions()
	opts.MaxAge = -1

	return cookie.Set(c, m.cookieName, "", opts)
}
