package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository keeps sessions in the 'sessions' table.
type sessionRepository struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewSessionRepository builds a postgres-backed session store issuing sessions valid for ttl.
func NewSessionRepository(db *gorm.DB, ttl time.Duration) repository.SessionRepository {
	return &sessionRepository{db: db, ttl: ttl, now: time.Now}
}

// Create allocates a fresh token and persists an anonymous session.
func (repo *sessionRepository) Create(ctx context.Context) (*entity.Session, error) {
	token, err := util.RandomToken(util.SessionTokenSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	now := repo.now().UTC()
	sessionM := &model.SessionModel{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(repo.ttl),
	}
	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return toSessionDomain(sessionM), nil
}

// FindByToken returns the live session for token.
func (repo *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, repo.now().UTC()).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return toSessionDomain(&sessionM), nil
}

// Update writes only the columns named by update in a single statement.
func (repo *sessionRepository) Update(ctx context.Context, token string, update entity.SessionUpdate) error {
	if update.IsEmpty() {
		_, err := repo.FindByToken(ctx, token)

		return err
	}

	columns := map[string]any{}
	if update.ClearUser {
		columns["user_id"] = nil
	}
	if update.UserID != nil {
		columns["user_id"] = *update.UserID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("token = ? AND expires_at > ?", token, repo.now().UTC()).
		Updates(columns)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// Delete removes the session; absent sessions are ignored.
func (repo *sessionRepository) Delete(ctx context.Context, token string) error {
	err := repo.db.WithContext(ctx).Where("token = ?", token).Delete(&model.SessionModel{}).Error

	return errors.Wrap(err, "failed to delete session")
}

// DeleteExpired removes every session past its expiry.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", repo.now().UTC()).Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

func toSessionDomain(data *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:        data.Token,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
