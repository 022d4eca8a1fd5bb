package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

const pendingOrderConstraint = "orders_one_pending_per_customer"

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}

	return nil
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	pgErr := pgError(err)

	return pgErr != nil && pgErr.Code == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	pgErr := pgError(err)

	return pgErr != nil && pgErr.Code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	pgErr := pgError(err)

	return pgErr != nil && pgErr.Code == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	pgErr := pgError(err)

	return pgErr != nil && pgErr.Code == pgCheckViolation
}

// isPendingOrderViolation reports a second pending order for one customer.
// gorm's translated ErrDuplicatedKey loses the constraint name; on the orders
// table it can only come from the pending index since ids are generated here.
func isPendingOrderViolation(err error) bool {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == pendingOrderConstraint
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}
