package postgres

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderColumns = []string{"id", "customer_id", "status", "products", "version", "created_at", "updated_at"}

func TestOrderRepository_FindPendingForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	orderID, customerID := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE customer_id = \$1 AND status = \$2 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(orderID.String(), customerID.String(), "pending", []byte(`{"A":1}`), 3, now, now))

	order, err := repo.FindPendingForUpdate(context.Background(), customerID)

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.Products{"A": json.RawMessage(`1`)}, order.Products)
	assert.Equal(t, int64(3), order.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindPending_None(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE customer_id = \$1 AND status = \$2`).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	_, err := repo.FindPending(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreatePending_ConcurrentInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`INSERT INTO "orders"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: pendingOrderConstraint})

	err := repo.CreatePending(context.Background(), &entity.Order{CustomerID: uuid.New()})

	assert.True(t, errors.Is(err, repository.ErrPendingOrderExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_ReplacePendingProducts_NoPendingOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`UPDATE "orders" SET .*"version"=version \+ 1.* WHERE customer_id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.ReplacePendingProducts(context.Background(), uuid.New(), entity.Products{"A": json.RawMessage(`1`)})

	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_DeletePending_MissingCartSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	customerID := uuid.New()

	mock.ExpectExec(`DELETE FROM "orders" WHERE customer_id = \$1 AND status = \$2`).
		WithArgs(customerID.String(), "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeletePending(context.Background(), customerID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Exec_PatchStatement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	stmt, err := service.NewPatchBuilder([]string{"status"}).Build("orders", 7, map[string]any{"status": "paid"})
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET "status" = $1 WHERE "id" = $2`)).
		WithArgs("paid", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Exec(context.Background(), stmt)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Exec_SecondPendingOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`UPDATE "orders"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: pendingOrderConstraint})

	_, err := repo.Exec(context.Background(), repository.Statement{SQL: `UPDATE "orders" SET "status" = ? WHERE "id" = ?`, Args: []any{"pending", 1}})

	assert.True(t, errors.Is(err, repository.ErrPendingOrderExists))
}
