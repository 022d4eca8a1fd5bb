package context

import (
	"context"
	"maps"

	"storefront/internal/domain/entity"
)

// KeyRequestState is the key for storing the RequestState in context.
const KeyRequestState ContextKey = "request_state"

// RequestState is the per-request record built up by the middleware chain.
// It is never modified in place; every With method returns a copy.
type RequestState struct {
	cookies   map[string]string
	session   *entity.Session
	principal *entity.User
}

// WithCookies returns a copy of the state carrying the parsed cookies.
func (s RequestState) WithCookies(cookies map[string]string) RequestState {
	s.cookies = maps.Clone(cookies)

	return s
}

// WithSession returns a copy of the state carrying a copy of session.
func (s RequestState) WithSession(session *entity.Session) RequestState {
	s.session = cloneSession(session)

	return s
}

// WithPrincipal returns a copy of the state carrying a copy of user.
func (s RequestState) WithPrincipal(user *entity.User) RequestState {
	if user == nil {
		s.principal = nil

		return s
	}
	principal := *user
	s.principal = &principal

	return s
}

// Cookie returns the value of one request cookie.
func (s RequestState) Cookie(name string) (string, bool) {
	value, ok := s.cookies[name]

	return value, ok
}

// Cookies returns a copy of the parsed request cookies.
func (s RequestState) Cookies() map[string]string {
	return maps.Clone(s.cookies)
}

// Session returns a copy of the request session, nil before the session middleware ran.
func (s RequestState) Session() *entity.Session {
	return cloneSession(s.session)
}

// Principal returns a copy of the authenticated user, nil when unauthenticated.
func (s RequestState) Principal() *entity.User {
	if s.principal == nil {
		return nil
	}
	principal := *s.principal

	return &principal
}

// IsAuthenticated reports whether a principal is attached.
func (s RequestState) IsAuthenticated() bool {
	return s.principal != nil
}

func cloneSession(session *entity.Session) *entity.Session {
	if session == nil {
		return nil
	}
	clone := *session
	if session.UserID != nil {
		userID := *session.UserID
		clone.UserID = &userID
	}

	return &clone
}

// GetRequestState extracts the RequestState from context.Context.
// A context without one yields the zero state.
func GetRequestState(ctx context.Context) RequestState {
	state, _ := valueOf[RequestState](ctx, KeyRequestState)

	return state
}

// WithRequestState returns a new context with the state.
func WithRequestState(ctx context.Context, state RequestState) context.Context {
	return context.WithValue(ctx, KeyRequestState, state)
}
