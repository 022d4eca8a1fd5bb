package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session correlates an opaque client-held token with an optional user.
// A session without UserID is anonymous but still valid for tracking.
type Session struct {
	ID        string     // Unguessable token, also the cookie value.
	UserID    *uuid.UUID // Bound user, nil while anonymous.
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsAnonymous reports whether no user is bound to the session.
func (s *Session) IsAnonymous() bool {
	return s == nil || s.UserID == nil
}

// IsExpired reports whether the session is past its expiry at the given time.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionUpdate is a partial update of a session record.
// Only the fields it names are written.
type SessionUpdate struct {
	UserID    *uuid.UUID
	ClearUser bool
}

// BindUser builds an update binding the session to a user.
func BindUser(userID uuid.UUID) SessionUpdate {
	return SessionUpdate{UserID: &userID}
}

// UnbindUser builds an update removing the user binding.
func UnbindUser() SessionUpdate {
	return SessionUpdate{ClearUser: true}
}

// IsEmpty reports whether the update names no field.
func (u SessionUpdate) IsEmpty() bool {
	return u.UserID == nil && !u.ClearUser
}

// Apply returns a copy of s with the update applied.
func (u SessionUpdate) Apply(s Session) Session {
	if u.ClearUser {
		s.UserID = nil
	}
	if u.UserID != nil {
		id := *u.UserID
		s.UserID = &id
	}

	return s
}
