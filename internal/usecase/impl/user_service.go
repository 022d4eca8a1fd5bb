// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	rolePolicy  service.RolePolicy
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	RolePolicy  service.RolePolicy
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		rolePolicy:  params.RolePolicy,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and binds the caller's session to it.
func (srv *userService) Register(ctx context.Context, sessionToken string, input usecase.RegisterInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and password are required")
	}
	if len(input.Password) > service.MaxPasswordBytes {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("password must be at most %d bytes", service.MaxPasswordBytes))
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}

		user := &entity.User{
			Email:        email,
			PasswordHash: hashedPassword,
			Role:         srv.rolePolicy.AssignRole(email),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		registered = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	if err := srv.bindSession(ctx, sessionToken, registered.ID); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registered.ID), slog.Any("role", registered.Role))

	return registered, nil
}

// Login verifies credentials and binds the caller's session to the account.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, sessionToken string, input usecase.LoginInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed: unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if err := srv.bindSession(ctx, sessionToken, user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

// Logout discards the session record, falling back to unbinding its user when
// the record cannot be deleted. Logging out twice is harmless.
func (srv *userService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}
	deleteErr := srv.sessionRepo.Delete(ctx, sessionToken)
	if deleteErr == nil {
		return nil
	}

	// The record could not be removed, so at least drop the user binding.
	err := srv.sessionRepo.Update(ctx, sessionToken, entity.UnbindUser())
	if err == nil || errors.Is(err, repository.ErrSessionNotFound) {
		srv.log(ctx).Warn("Failed to delete session, unbound it instead", slog.Any("error", deleteErr))

		return nil
	}
	srv.log(ctx).Error("Failed to end session", slog.Any("deleteError", deleteErr), slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrSessionStoreUnavailable, deleteErr.Error())
}

// ResolvePrincipal loads the user a session is bound to.
func (srv *userService) ResolvePrincipal(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "session bound to a missing user")
		}

		return nil, errors.Wrap(err, "failed to resolve principal")
	}

	return user, nil
}

func (srv *userService) bindSession(ctx context.Context, sessionToken string, userID uuid.UUID) error {
	err := srv.sessionRepo.Update(ctx, sessionToken, entity.BindUser(userID))
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(domainerrors.ErrUnauthenticated, "session expired")
	}
	srv.log(ctx).Error("Failed to bind session", slog.Any("userID", userID), slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrSessionStoreUnavailable, err.Error())
}
