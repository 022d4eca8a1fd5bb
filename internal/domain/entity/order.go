package entity

import (
	"encoding/json"
	"maps"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending marks the customer's single active cart.
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Products maps a product identifier to its line-item data.
// Line-item values are opaque to the order engine.
type Products map[string]json.RawMessage

// Clone returns a shallow copy that can be modified independently.
func (p Products) Clone() Products {
	if p == nil {
		return Products{}
	}

	return maps.Clone(p)
}

// Order is a customer's order document.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	CustomerID uuid.UUID   `json:"customerId"`
	Status     OrderStatus `json:"status"`
	Products   Products    `json:"products"`
	// Version increments on every write and can be used as an optimistic concurrency token.
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsPending reports whether this order is the customer's active cart.
func (o *Order) IsPending() bool {
	return o != nil && o.Status == OrderStatusPending
}
