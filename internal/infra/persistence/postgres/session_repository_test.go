package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, time.Hour)

	mock.ExpectExec(`INSERT INTO "sessions"`).WillReturnResult(sqlmock.NewResult(0, 1))

	session, err := repo.Create(context.Background())

	require.NoError(t, err)
	assert.Len(t, session.ID, 43)
	assert.True(t, session.IsAnonymous())
	assert.Equal(t, time.Hour, session.ExpiresAt.Sub(session.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindByToken_Unknown(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, time.Hour)

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE token = \$1 AND expires_at > \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"token", "user_id", "created_at", "expires_at"}))

	_, err := repo.FindByToken(context.Background(), "missing")

	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindByToken_Bound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, time.Hour)
	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE token = \$1 AND expires_at > \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"token", "user_id", "created_at", "expires_at"}).
			AddRow("tok", userID.String(), now, now.Add(time.Hour)))

	session, err := repo.FindByToken(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "tok", session.ID)
	require.NotNil(t, session.UserID)
	assert.Equal(t, userID, *session.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Update_WritesOnlyUserColumn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, time.Hour)
	userID := uuid.New()

	mock.ExpectExec(`UPDATE "sessions" SET "user_id"=\$1 WHERE token = \$2 AND expires_at > \$3`).
		WithArgs(userID.String(), "tok", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "tok", entity.BindUser(userID))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Update_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, time.Hour)

	mock.ExpectExec(`UPDATE "sessions" SET "user_id"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), "gone", entity.UnbindUser())

	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Delete_IsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, time.Hour)

	mock.ExpectExec(`DELETE FROM "sessions" WHERE token = \$1`).
		WithArgs("tok").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "tok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, time.Hour)

	mock.ExpectExec(`DELETE FROM "sessions" WHERE expires_at <= \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
