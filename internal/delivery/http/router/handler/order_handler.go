package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type cartRequest struct {
	Products entity.Products `json:"products" validate:"required"`
}

// OrderHandler exposes the caller's cart. Every route sits behind RequireAuth.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// GetCart returns the pending order.
func (h *OrderHandler) GetCart(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetCart(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// AddToCart merges the posted products into the cart; posted values win.
func (h *OrderHandler) AddToCart(c echo.Context) error {
	return h.mergeCart(c, h.uc.AddToCart)
}

// UpdateCart merges the posted products into the cart; stored values win.
func (h *OrderHandler) UpdateCart(c echo.Context) error {
	return h.mergeCart(c, h.uc.UpdateCart)
}

func (h *OrderHandler) mergeCart(
	c echo.Context,
	merge func(ctx context.Context, customerID uuid.UUID, products entity.Products) (*entity.Order, error),
) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var input cartRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := merge(c.Request().Context(), user.ID, input.Products)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Cart updated")
}

// ClearCart deletes the pending order.
func (h *OrderHandler) ClearCart(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.uc.ClearCart(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

// PatchOrder writes allow-listed fields of one of the caller's orders.
func (h *OrderHandler) PatchOrder(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("order id must be a UUID")
	}

	// The body is decoded directly so path parameters never leak into the field set.
	var fields map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("body must be a JSON object")
	}

	order, err := h.uc.PatchOrder(c.Request().Context(), user.ID, orderID, fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated")
}
