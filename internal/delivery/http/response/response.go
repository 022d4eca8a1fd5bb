// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response is the envelope of every JSON body. Code mirrors the HTTP status.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code, e.g. "ORDER_NOT_FOUND".
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

func envelope(status int, message string) Response {
	if message == "" {
		message = http.StatusText(status)
	}

	return Response{Code: status, Message: message}
}

// Success writes data. An empty message defaults to "Success".
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}
	body := envelope(statusCode, message)
	body.Success = true
	body.Data = data

	return c.JSON(statusCode, body)
}

// Error writes a failure. An empty message defaults to the status text.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	body := envelope(statusCode, message)
	body.Error = &ErrorInfo{Code: errorCode, Details: details}

	return c.JSON(statusCode, body)
}

// AppError writes the envelope of a catalogued application error.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}
