package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const ordersTable = "orders"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager        repository.TransactionManager
	orderRepo        repository.OrderRepository
	patchBuilder     *service.PatchBuilder
	addPrecedence    service.MergePrecedence
	updatePrecedence service.MergePrecedence
	logger           *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService builds the cart service from the order section of the config.
func NewOrderService(params OrderServiceParams) (usecase.OrderUsecase, error) {
	orderCfg := params.Config.Order
	if orderCfg == nil {
		return nil, errors.New("order configuration is missing")
	}

	addPrecedence, err := service.ParseMergePrecedence(orderCfg.AddPrecedence)
	if err != nil {
		return nil, errors.Wrap(err, "order.addPrecedence")
	}
	updatePrecedence, err := service.ParseMergePrecedence(orderCfg.UpdatePrecedence)
	if err != nil {
		return nil, errors.Wrap(err, "order.updatePrecedence")
	}

	return &orderService{
		txManager:        params.TxManager,
		orderRepo:        params.OrderRepo,
		patchBuilder:     service.NewPatchBuilder(orderCfg.PatchableFields, service.WithVersionColumn("version")),
		addPrecedence:    addPrecedence,
		updatePrecedence: updatePrecedence,
		logger:           params.Logger,
	}, nil
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the pending order.
func (srv *orderService) GetCart(ctx context.Context, customerID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindPending(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "no pending order")
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return order, nil
}

// AddToCart merges products with the add precedence.
func (srv *orderService) AddToCart(ctx context.Context, customerID uuid.UUID, products entity.Products) (*entity.Order, error) {
	return srv.upsert(ctx, customerID, products, srv.addPrecedence)
}

// UpdateCart merges products with the update precedence.
func (srv *orderService) UpdateCart(ctx context.Context, customerID uuid.UUID, products entity.Products) (*entity.Order, error) {
	return srv.upsert(ctx, customerID, products, srv.updatePrecedence)
}

// upsert merges incoming into the pending order under a row lock, creating the
// order when there is none. Losing an insert race to a concurrent request
// retries once, which then merges into the winner's row.
func (srv *orderService) upsert(ctx context.Context, customerID uuid.UUID, incoming entity.Products, precedence service.MergePrecedence) (*entity.Order, error) {
	if incoming == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "products are required")
	}

	var result *entity.Order
	attempt := func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			orderRepo := repoFactory.OrderRepo()

			current, err := orderRepo.FindPendingForUpdate(ctx, customerID)
			if errors.Is(err, repository.ErrOrderNotFound) {
				order := &entity.Order{
					CustomerID: customerID,
					Status:     entity.OrderStatusPending,
					Products:   service.MergeProducts(nil, incoming, precedence),
				}
				if err := orderRepo.CreatePending(ctx, order); err != nil {
					return err
				}
				result = order

				return nil
			}
			if err != nil {
				return errors.Wrap(err, "failed to lock pending order")
			}

			merged := service.MergeProducts(current.Products, incoming, precedence)
			updated, err := orderRepo.ReplacePendingProducts(ctx, customerID, merged)
			if err != nil {
				return errors.Wrap(err, "failed to store merged products")
			}
			result = updated

			return nil
		})
	}

	err := attempt()
	if errors.Is(err, repository.ErrPendingOrderExists) {
		srv.log(ctx).Debug("Pending order created concurrently, retrying merge", slog.Any("customerID", customerID))
		err = attempt()
	}
	if err != nil {
		if errors.Is(err, repository.ErrPendingOrderExists) {
			return nil, errors.Wrap(domainerrors.ErrOrderConflict, "pending order changed concurrently")
		}
		srv.log(ctx).Error("Failed to merge cart", slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to merge cart")
	}

	srv.log(ctx).Debug("Cart merged",
		slog.Any("customerID", customerID),
		slog.String("precedence", precedence.String()),
		slog.Int64("version", result.Version),
	)

	return result, nil
}

// ClearCart deletes the pending order; a missing cart is fine.
func (srv *orderService) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	if err := srv.orderRepo.DeletePending(ctx, customerID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// PatchOrder writes allow-listed columns of an order the customer owns.
func (srv *orderService) PatchOrder(ctx context.Context, customerID, orderID uuid.UUID, fields map[string]any) (*entity.Order, error) {
	if err := validatePatchFields(fields); err != nil {
		return nil, err
	}

	stmt, err := srv.patchBuilder.Build(ordersTable, orderID, fields)
	if err != nil {
		return nil, err
	}

	var patched *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if errors.Is(err, repository.ErrOrderNotFound) || (err == nil && order.CustomerID != customerID) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found for customer")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load order")
		}

		affected, err := orderRepo.Exec(ctx, stmt)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order disappeared during patch")
		}

		patched, err = orderRepo.FindByID(ctx, orderID)

		return errors.Wrap(err, "failed to reload order")
	})
	if err != nil {
		if errors.Is(err, repository.ErrPendingOrderExists) {
			return nil, errors.Wrap(domainerrors.ErrOrderConflict, "customer already has a pending order")
		}

		return nil, errors.Wrap(err, "failed to patch order")
	}

	srv.log(ctx).Info("Order patched", slog.Any("orderID", orderID), slog.Int("fields", len(fields)))

	return patched, nil
}

// validatePatchFields checks the values of columns with domain meaning.
// Column names themselves are checked by the patch builder.
func validatePatchFields(fields map[string]any) error {
	if raw, ok := fields["status"]; ok {
		status, isString := raw.(string)
		if !isString || !entity.OrderStatus(status).IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("invalid order status")
		}
	}
	if raw, ok := fields["products"]; ok {
		if _, isObject := raw.(map[string]any); !isObject {
			return domainerrors.ErrValidationFailed.WithDetails("products must be an object")
		}
	}

	return nil
}
