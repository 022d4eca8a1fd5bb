package validator

import (
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(credentials{Email: "a@example.com", Password: "long enough"}))

	err := v.Validate(credentials{Email: "not-an-email", Password: "short"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "email must be a valid email address; password must be at least 8", appErr.Details())
}

func TestValidator_RequiredFields(t *testing.T) {
	err := New().Validate(credentials{})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "email is required; password is required", appErr.Details())
}

type secret struct {
	Password string `json:"password" validate:"required,maxbytes=72"`
}

func TestValidator_MaxBytesCountsBytes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(secret{Password: strings.Repeat("a", 72)}))
	assert.NoError(t, v.Validate(secret{Password: strings.Repeat("é", 36)}))

	// 40 runes, 80 bytes.
	err := v.Validate(secret{Password: strings.Repeat("é", 40)})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, "password must be at most 72 bytes", appErr.Details())
}
