package service

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchBuilder_Build(t *testing.T) {
	builder := NewPatchBuilder([]string{"status", "products"})

	stmt, err := builder.Build("orders", 7, map[string]any{
		"status":   "paid",
		"products": map[string]int{"A": 1},
	})

	require.NoError(t, err)
	assert.Equal(t, `UPDATE "orders" SET "products" = ?, "status" = ? WHERE "id" = ?`, stmt.SQL)
	assert.Equal(t, []any{`{"A":1}`, "paid", 7}, stmt.Args)
}

func TestPatchBuilder_VersionColumn(t *testing.T) {
	builder := NewPatchBuilder([]string{"status"}, WithVersionColumn("version"))

	stmt, err := builder.Build("orders", "id-1", map[string]any{"status": "shipped"})

	require.NoError(t, err)
	assert.Equal(t, `UPDATE "orders" SET "status" = ?, "version" = "version" + 1 WHERE "id" = ?`, stmt.SQL)
	assert.Equal(t, []any{"shipped", "id-1"}, stmt.Args)
}

func TestPatchBuilder_EmptyInput(t *testing.T) {
	builder := NewPatchBuilder([]string{"status"})

	_, err := builder.Build("orders", 7, map[string]any{})
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyPatch))

	_, err = builder.Build("orders", 7, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyPatch))
}

func TestPatchBuilder_RejectsColumnOutsideAllowList(t *testing.T) {
	builder := NewPatchBuilder([]string{"status"})

	_, err := builder.Build("orders", 7, map[string]any{
		"status":      "paid",
		"customer_id": "someone-else",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFieldNotAllowed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "customer_id", appErr.Details())
}

func TestPatchBuilder_ScalarsBoundAsIs(t *testing.T) {
	builder := NewPatchBuilder([]string{"count", "flag", "note"})
	var note *string

	stmt, err := builder.Build("t", 1, map[string]any{"count": 3, "flag": true, "note": note})

	require.NoError(t, err)
	assert.Equal(t, []any{3, true, nil, 1}, stmt.Args)
}
