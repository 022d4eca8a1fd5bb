package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase manages the customer's pending order (the cart).
type OrderUsecase interface {
	// GetCart returns the pending order.
	GetCart(ctx context.Context, customerID uuid.UUID) (*entity.Order, error)

	// AddToCart merges products into the pending order, creating it when absent.
	// Conflicting keys follow the configured add precedence.
	AddToCart(ctx context.Context, customerID uuid.UUID, products entity.Products) (*entity.Order, error)

	// UpdateCart is AddToCart with the configured update precedence.
	UpdateCart(ctx context.Context, customerID uuid.UUID, products entity.Products) (*entity.Order, error)

	// ClearCart deletes the pending order. A missing cart is not an error.
	ClearCart(ctx context.Context, customerID uuid.UUID) error

	// PatchOrder writes allow-listed columns of one of the customer's orders.
	PatchOrder(ctx context.Context, customerID, orderID uuid.UUID, fields map[string]any) (*entity.Order, error)
}
