package redis

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, ttl time.Duration) (repository.SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionRepository(client, ttl), server
}

func TestSessionRepository_CreateAndFind(t *testing.T) {
	repo, server := newTestRepository(t, time.Hour)
	ctx := context.Background()

	session, err := repo.Create(ctx)
	require.NoError(t, err)
	assert.True(t, session.IsAnonymous())
	assert.True(t, server.Exists("session:"+session.ID))
	assert.Equal(t, time.Hour, server.TTL("session:"+session.ID))

	found, err := repo.FindByToken(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	assert.True(t, found.IsAnonymous())
}

func TestSessionRepository_UnknownToken(t *testing.T) {
	repo, _ := newTestRepository(t, time.Hour)

	_, err := repo.FindByToken(context.Background(), "nope")

	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

func TestSessionRepository_ExpiredKey(t *testing.T) {
	repo, server := newTestRepository(t, time.Minute)
	ctx := context.Background()

	session, err := repo.Create(ctx)
	require.NoError(t, err)

	server.FastForward(2 * time.Minute)

	_, err = repo.FindByToken(ctx, session.ID)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

func TestSessionRepository_UpdateMergesAndKeepsTTL(t *testing.T) {
	repo, server := newTestRepository(t, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	session, err := repo.Create(ctx)
	require.NoError(t, err)
	server.FastForward(10 * time.Minute)

	require.NoError(t, repo.Update(ctx, session.ID, entity.BindUser(userID)))

	found, err := repo.FindByToken(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, found.UserID)
	assert.Equal(t, userID, *found.UserID)
	assert.Equal(t, session.CreatedAt.Unix(), found.CreatedAt.Unix())
	assert.Equal(t, 50*time.Minute, server.TTL("session:"+session.ID))

	require.NoError(t, repo.Update(ctx, session.ID, entity.UnbindUser()))
	found, err = repo.FindByToken(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, found.IsAnonymous())
}

func TestSessionRepository_UpdateMissing(t *testing.T) {
	repo, _ := newTestRepository(t, time.Hour)

	err := repo.Update(context.Background(), "missing", entity.BindUser(uuid.New()))

	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

func TestSessionRepository_DeleteIsIdempotent(t *testing.T) {
	repo, server := newTestRepository(t, time.Hour)
	ctx := context.Background()

	session, err := repo.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, session.ID))
	require.NoError(t, repo.Delete(ctx, session.ID))
	assert.False(t, server.Exists("session:"+session.ID))

	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
