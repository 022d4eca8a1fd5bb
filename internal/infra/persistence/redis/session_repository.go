package redis

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "session:"
	// maxUpdateAttempts bounds the WATCH retry loop under contention.
	maxUpdateAttempts = 5
)

// sessionRecord is the JSON value stored under session:<token>.
type sessionRecord struct {
	UserID    *uuid.UUID `json:"userId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// getter is satisfied by both *goredis.Client and *goredis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
}

type sessionRepository struct {
	client *goredis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionRepository builds a Redis session store. Expiry is delegated to key TTLs.
func NewSessionRepository(client *goredis.Client, ttl time.Duration) repository.SessionRepository {
	return &sessionRepository{client: client, ttl: ttl, now: time.Now}
}

func key(token string) string {
	return keyPrefix + token
}

// Create stores a new anonymous session. SETNX guards against a token collision.
func (r *sessionRepository) Create(ctx context.Context) (*entity.Session, error) {
	token, err := util.RandomToken(util.SessionTokenSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	now := r.now().UTC()
	record := sessionRecord{CreatedAt: now, ExpiresAt: now.Add(r.ttl)}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	created, err := r.client.SetNX(ctx, key(token), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}
	if !created {
		return nil, errors.New("session token collision")
	}

	return record.toDomain(token), nil
}

// FindByToken loads a session; missing and expired keys look the same.
func (r *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	record, err := r.load(ctx, r.client, token)
	if err != nil {
		return nil, err
	}

	return record.toDomain(token), nil
}

// Update merges the named fields into the stored record inside a WATCH
// transaction, keeping the remaining TTL.
func (r *sessionRepository) Update(ctx context.Context, token string, update entity.SessionUpdate) error {
	txf := func(tx *goredis.Tx) error {
		record, err := r.load(ctx, tx, token)
		if err != nil {
			return err
		}

		current := update.Apply(entity.Session{UserID: record.UserID})
		record.UserID = current.UserID

		data, err := json.Marshal(record)
		if err != nil {
			return errors.Wrap(err, "failed to marshal session")
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.SetArgs(ctx, key(token), data, goredis.SetArgs{KeepTTL: true})

			return nil
		})

		return err
	}

	for range maxUpdateAttempts {
		err := r.client.Watch(ctx, txf, key(token))
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(err, "failed to update session")
		}

		return err
	}

	return errors.New("session update aborted after repeated contention")
}

// Delete removes the key; DEL of a missing key is a no-op.
func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	return errors.Wrap(r.client.Del(ctx, key(token)).Err(), "failed to delete session")
}

// DeleteExpired is a no-op: Redis evicts expired keys itself.
func (r *sessionRepository) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}

func (r *sessionRepository) load(ctx context.Context, cmd getter, token string) (*sessionRecord, error) {
	val, err := cmd.Get(ctx, key(token)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	var record sessionRecord
	if err := json.Unmarshal(val, &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}
	if !r.now().Before(record.ExpiresAt) {
		return nil, repository.ErrSessionNotFound
	}

	return &record, nil
}

func (rec *sessionRecord) toDomain(token string) *entity.Session {
	return &entity.Session{
		ID:        token,
		UserID:    rec.UserID,
		CreatedAt: rec.CreatedAt,
		ExpiresAt: rec.ExpiresAt,
	}
}
