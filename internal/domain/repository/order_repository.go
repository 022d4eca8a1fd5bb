package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when no matching order exists.
	ErrOrderNotFound = errors.New("order not found")
	// ErrPendingOrderExists is returned when a second pending order would be created for a customer.
	ErrPendingOrderExists = errors.New("pending order already exists")
)

// Statement is a parameterized SQL statement with positional '?' placeholders.
type Statement struct {
	SQL  string
	Args []any
}

// OrderRepository defines the persistence operations on orders.
type OrderRepository interface {
	// FindPending returns the customer's pending order or ErrOrderNotFound.
	FindPending(ctx context.Context, customerID uuid.UUID) (*entity.Order, error)

	// FindPendingForUpdate is FindPending holding a row lock until the surrounding transaction ends.
	FindPendingForUpdate(ctx context.Context, customerID uuid.UUID) (*entity.Order, error)

	// FindByID returns the order with the given primary id or ErrOrderNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// CreatePending inserts a pending order. Returns ErrPendingOrderExists on a concurrent insert.
	CreatePending(ctx context.Context, order *entity.Order) error

	// ReplacePendingProducts overwrites the products document of the customer's pending order
	// and bumps its version.
	ReplacePendingProducts(ctx context.Context, customerID uuid.UUID, products entity.Products) (*entity.Order, error)

	// DeletePending removes the customer's pending order. Deleting nothing is not an error.
	DeletePending(ctx context.Context, customerID uuid.UUID) error

	// Exec runs a statement built by the patch builder and returns the affected row count.
	Exec(ctx context.Context, stmt Statement) (int64, error)
}
