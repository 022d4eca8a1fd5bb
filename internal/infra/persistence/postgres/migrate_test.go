package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_ExecutesEveryStatement(t *testing.T) {
	db, mock := newMockDB(t)

	for range schema {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_StopsAtFirstFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_unique").WillReturnError(errors.New("boom"))

	err := Migrate(context.Background(), db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration step 2 failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchema_PendingOrderIndexIsPartial(t *testing.T) {
	var found bool
	for _, stmt := range schema {
		if stmt == `CREATE UNIQUE INDEX IF NOT EXISTS orders_one_pending_per_customer ON orders (customer_id) WHERE status = 'pending'` {
			found = true
		}
	}
	assert.True(t, found)
}
