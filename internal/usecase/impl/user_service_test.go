package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockService.MockPasswordHasher
	rolePolicy  *mockService.MockRolePolicy
}

func newUserServiceWithMocks(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	m := &userServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		sessionRepo: mockRepo.NewMockSessionRepository(t),
		hasher:      mockService.NewMockPasswordHasher(t),
		rolePolicy:  mockService.NewMockRolePolicy(t),
	}

	srv := NewUserService(UserServiceParams{
		TxManager:   m.txManager,
		UserRepo:    m.userRepo,
		SessionRepo: m.sessionRepo,
		Hasher:      m.hasher,
		RolePolicy:  m.rolePolicy,
		Logger:      newDiscardLogger(),
	})

	return srv, m
}

func (m *userServiceMocks) expectTx(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
	m.factory.EXPECT().UserRepo().Return(m.userRepo)
}

func TestUserService_Register_Success(t *testing.T) {
	srv, m := newUserServiceWithMocks(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil)
	m.expectTx(ctx)
	m.userRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(nil, repository.ErrUserNotFound)
	m.rolePolicy.EXPECT().AssignRole("admin@example.com").Return(entity.RoleAdmin)
	m.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	m.sessionRepo.EXPECT().Update(ctx, "tok", mock.AnythingOfType("entity.SessionUpdate")).
		Run(func(_ context.Context, _ string, update entity.SessionUpdate) {
			require.NotNil(t, update.UserID)
		}).
		Return(nil)

	user, err := srv.Register(ctx, "tok", usecase.RegisterInput{Email: " admin@example.com ", Password: "s3cret!"})

	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	srv, m := newUserServiceWithMocks(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	m.expectTx(ctx)
	m.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := srv.Register(ctx, "tok", usecase.RegisterInput{Email: "taken@example.com", Password: "pw"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_MissingFields(t *testing.T) {
	srv, _ := newUserServiceWithMocks(t)

	_, err := srv.Register(context.Background(), "tok", usecase.RegisterInput{Email: "  "})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_PasswordLimitCountsBytes(t *testing.T) {
	srv, _ := newUserServiceWithMocks(t)

	// 40 runes encode to 80 bytes, past the bcrypt limit.
	_, err := srv.Register(context.Background(), "tok", usecase.RegisterInput{
		Email:    "a@example.com",
		Password: strings.Repeat("é", 40),
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, "password must be at most 72 bytes", appErr.Details())
}

func TestUserService_Login_Success(t *testing.T) {
	srv, m := newUserServiceWithMocks(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hashed"}

	m.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("pw", "hashed").Return(true)
	m.sessionRepo.EXPECT().Update(ctx, "tok", entity.BindUser(user.ID)).Return(nil)

	got, err := srv.Login(ctx, "tok", usecase.LoginInput{Email: "a@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		srv, m := newUserServiceWithMocks(t)
		m.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := srv.Login(ctx, "tok", usecase.LoginInput{Email: "nobody@example.com", Password: "pw"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		srv, m := newUserServiceWithMocks(t)
		m.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(&entity.User{PasswordHash: "hashed"}, nil)
		m.hasher.EXPECT().Check("bad", "hashed").Return(false)

		_, err := srv.Login(ctx, "tok", usecase.LoginInput{Email: "a@example.com", Password: "bad"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_Login_SessionGone(t *testing.T) {
	srv, m := newUserServiceWithMocks(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}

	m.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("pw", "hashed").Return(true)
	m.sessionRepo.EXPECT().Update(ctx, "tok", entity.BindUser(user.ID)).Return(repository.ErrSessionNotFound)

	_, err := srv.Login(ctx, "tok", usecase.LoginInput{Email: "a@example.com", Password: "pw"})

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestUserService_Logout(t *testing.T) {
	srv, m := newUserServiceWithMocks(t)
	ctx := context.Background()

	m.sessionRepo.EXPECT().Delete(ctx, "tok").Return(nil)

	require.NoError(t, srv.Logout(ctx, "tok"))
	require.NoError(t, srv.Logout(ctx, ""))
}

func TestUserService_Logout_UnbindsWhenDeleteFails(t *testing.T) {
	srv, m := newUserServiceWithMocks(t)
	ctx := context.Background()

	m.sessionRepo.EXPECT().Delete(ctx, "tok").Return(errors.New("delete denied"))
	m.sessionRepo.EXPECT().Update(ctx, "tok", entity.UnbindUser()).Return(nil)

	require.NoError(t, srv.Logout(ctx, "tok"))
}

func TestUserService_Logout_StoreDown(t *testing.T) {
	srv, m := newUserServiceWithMocks(t)
	ctx := context.Background()

	m.sessionRepo.EXPECT().Delete(ctx, "tok").Return(errors.New("connection refused"))
	m.sessionRepo.EXPECT().Update(ctx, "tok", entity.UnbindUser()).Return(errors.New("connection refused"))

	err := srv.Logout(ctx, "tok")

	assert.True(t, errors.Is(err, domainerrors.ErrSessionStoreUnavailable))
}

func TestUserService_ResolvePrincipal_DanglingBinding(t *testing.T) {
	srv, m := newUserServiceWithMocks(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := srv.ResolvePrincipal(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
