package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	uc        usecase.UserUsecase
	sessionMW *middleware.SessionMiddleware
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, sessionMW *middleware.SessionMiddleware, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:        uc,
		sessionMW: sessionMW,
		logger:    logger,
	}
}

// Register creates an account and logs the session in.
func (h *UserHandler) Register(c echo.Context) error {
	var input credentialsRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), sessionToken(c), usecase.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input credentialsRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.uc.Login(c.Request().Context(), sessionToken(c), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Login successful")
}

// Logout discards the session and expires its cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), sessionToken(c)); err != nil {
		return errors.WithStack(err)
	}
	if err := h.sessionMW.ExpireCookie(c); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Me returns the authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}
