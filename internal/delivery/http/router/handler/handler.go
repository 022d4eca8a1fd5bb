// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bindAndValidate decodes the JSON body into input and runs its validate tags.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return errors.WithStack(c.Validate(input))
}

func requestState(c echo.Context) deliverycontext.RequestState {
	return deliverycontext.GetRequestState(c.Request().Context())
}

// principal returns the authenticated user. Routes calling it sit behind RequireAuth.
func principal(c echo.Context) (*entity.User, error) {
	user := requestState(c).Principal()
	if user == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return user, nil
}

func sessionToken(c echo.Context) string {
	if session := requestState(c).Session(); session != nil {
		return session.ID
	}

	return ""
}
