package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/cookie"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSessionConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{CookieName: "sid", TTL: time.Hour},
	}
}

// newContext runs the request through cookie parsing so the state carries its cookies.
func newContext(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, cookie.Middleware(func(echo.Context) error { return nil })(c))

	return c, rec
}

func withState(c echo.Context, state deliverycontext.RequestState) {
	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithRequestState(req.Context(), state)))
}

func TestSessionMiddleware_NewSessionWithoutCookie(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	m := NewSessionMiddleware(sessionUC, newSessionConfig(), newDiscardLogger())
	c, rec := newContext(t, httptest.NewRequest(http.MethodGet, "/", nil))

	sessionUC.EXPECT().Resolve(mock.Anything, "").Return(&entity.Session{ID: "new-token"}, true, nil).Once()

	var seen *entity.Session
	err := m.Handle(func(c echo.Context) error {
		seen = deliverycontext.GetRequestState(c.Request().Context()).Session()

		return c.NoContent(http.StatusNoContent)
	})(c)

	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "new-token", seen.ID)

	setCookies := rec.Header().Values(echo.HeaderSetCookie)
	require.Len(t, setCookies, 1)
	assert.Equal(t, "sid=new-token; Max-Age=3600; Path=/; HttpOnly; SameSite=Lax", setCookies[0])
}

func TestSessionMiddleware_KnownTokenSetsNoCookie(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	m := NewSessionMiddleware(sessionUC, newSessionConfig(), newDiscardLogger())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderCookie, "sid=known")
	c, rec := newContext(t, req)

	sessionUC.EXPECT().Resolve(mock.Anything, "known").Return(&entity.Session{ID: "known"}, false, nil)

	called := false
	err := m.Handle(func(echo.Context) error {
		called = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, rec.Header().Values(echo.HeaderSetCookie))
}

func TestSessionMiddleware_UnknownTokenActsLikeNoToken(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	m := NewSessionMiddleware(sessionUC, newSessionConfig(), newDiscardLogger())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderCookie, "sid=stale")
	c, rec := newContext(t, req)

	sessionUC.EXPECT().Resolve(mock.Anything, "stale").Return(&entity.Session{ID: "fresh"}, true, nil)

	require.NoError(t, m.Handle(func(echo.Context) error { return nil })(c))

	setCookies := rec.Header().Values(echo.HeaderSetCookie)
	require.Len(t, setCookies, 1)
	assert.Equal(t, "fresh", cookie.Parse(setCookies[0])["sid"])
}

func TestSessionMiddleware_StoreFailureStopsChain(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	m := NewSessionMiddleware(sessionUC, newSessionConfig(), newDiscardLogger())
	c, rec := newContext(t, httptest.NewRequest(http.MethodGet, "/", nil))

	sessionUC.EXPECT().Resolve(mock.Anything, "").
		Return(nil, false, errors.Wrap(domainerrors.ErrSessionStoreUnavailable, "connection refused"))

	err := m.Handle(func(echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})(c)

	assert.True(t, errors.Is(err, domainerrors.ErrSessionStoreUnavailable))
	assert.Empty(t, rec.Header().Values(echo.HeaderSetCookie))
}

func TestSessionMiddleware_ExpireCookie(t *testing.T) {
	cfg := newSessionConfig()
	cfg.Session.Secure = true
	m := NewSessionMiddleware(mockUsecase.NewMockSessionUsecase(t), cfg, newDiscardLogger())
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/logout", nil), rec)

	require.NoError(t, m.ExpireCookie(c))

	assert.Equal(t, "sid=; Max-Age=0; Path=/; HttpOnly; Secure; SameSite=Lax", rec.Header().Get(echo.HeaderSetCookie))
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "a@example.com", Role: entity.RoleCustomer}

	tests := []struct {
		name          string
		session       *entity.Session
		setup         func(userUC *mockUsecase.MockUserUsecase)
		wantPrincipal bool
		wantErr       error
	}{
		{
			name:    "anonymous session",
			session: &entity.Session{ID: "tok"},
		},
		{
			name:    "bound session",
			session: &entity.Session{ID: "tok", UserID: &userID},
			setup: func(userUC *mockUsecase.MockUserUsecase) {
				userUC.EXPECT().ResolvePrincipal(mock.Anything, userID).Return(user, nil)
			},
			wantPrincipal: true,
		},
		{
			name:    "dangling binding",
			session: &entity.Session{ID: "tok", UserID: &userID},
			setup: func(userUC *mockUsecase.MockUserUsecase) {
				userUC.EXPECT().ResolvePrincipal(mock.Anything, userID).
					Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found"))
			},
		},
		{
			name:    "store failure",
			session: &entity.Session{ID: "tok", UserID: &userID},
			setup: func(userUC *mockUsecase.MockUserUsecase) {
				userUC.EXPECT().ResolvePrincipal(mock.Anything, userID).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userUC := mockUsecase.NewMockUserUsecase(t)
			if tt.setup != nil {
				tt.setup(userUC)
			}
			m := NewAuthMiddleware(userUC, newDiscardLogger())
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			withState(c, deliverycontext.RequestState{}.WithSession(tt.session))

			called := false
			var state deliverycontext.RequestState
			err := m.Authenticate(func(c echo.Context) error {
				called = true
				state = deliverycontext.GetRequestState(c.Request().Context())

				return nil
			})(c)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.False(t, called)

				return
			}

			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, tt.wantPrincipal, state.IsAuthenticated())
			assert.Equal(t, tt.session, state.Session())
		})
	}
}

func TestAuthMiddleware_GateBlocksEveryVerb(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockUserUsecase(t), newDiscardLogger())

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	called := false
	handler := func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusOK)
	}
	group := e.Group("/order")
	group.Use(m.RequireAuth)
	verbs := []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	for _, verb := range verbs {
		group.Add(verb, "", handler)
		group.Add(verb, "/:id", handler)
	}

	for _, verb := range verbs {
		for _, path := range []string{"/order", "/order/123"} {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(verb, path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", verb, path)
		}
	}
	assert.False(t, called)
}

func TestAuthMiddleware_GateAllowsPrincipal(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockUserUsecase(t), newDiscardLogger())
	c := echo.New().NewContext(httptest.NewRequest(http.MethodDelete, "/order", nil), httptest.NewRecorder())
	withState(c, deliverycontext.RequestState{}.WithPrincipal(&entity.User{ID: uuid.New()}))

	called := false
	err := m.RequireAuth(func(echo.Context) error {
		called = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockUserUsecase(t), newDiscardLogger())
	next := func(echo.Context) error { return nil }

	tests := []struct {
		name      string
		principal *entity.User
		wantErr   error
	}{
		{name: "no principal", wantErr: domainerrors.ErrUnauthenticated},
		{name: "customer", principal: &entity.User{Role: entity.RoleCustomer}, wantErr: domainerrors.ErrForbidden},
		{name: "admin", principal: &entity.User{Role: entity.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/products", nil), httptest.NewRecorder())
			withState(c, deliverycontext.RequestState{}.WithPrincipal(tt.principal))

			err := m.RequireRole(entity.RoleAdmin)(next)(c)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{
			name:     "wrapped application error",
			err:      errors.Wrap(domainerrors.ErrOrderNotFound, "no pending order"),
			wantCode: http.StatusNotFound,
			wantErr:  domainerrors.ErrOrderNotFound.ErrorCode(),
		},
		{
			name:     "echo error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantCode: http.StatusMethodNotAllowed,
			wantErr:  "HTTP_ERROR",
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantErr:  domainerrors.ErrInternalError.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, "done", strings.TrimSpace(rec.Body.String()))
}
