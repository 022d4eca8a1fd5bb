package postgres

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements repository.OrderRepository on the 'orders' table.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) pendingScope(ctx context.Context, customerID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, string(entity.OrderStatusPending))
}

// FindPending returns the customer's pending order.
func (repo *orderRepository) FindPending(ctx context.Context, customerID uuid.UUID) (*entity.Order, error) {
	return repo.first(repo.pendingScope(ctx, customerID))
}

// FindPendingForUpdate locks the pending row with SELECT ... FOR UPDATE.
// Only meaningful inside a transaction.
func (repo *orderRepository) FindPendingForUpdate(ctx context.Context, customerID uuid.UUID) (*entity.Order, error) {
	return repo.first(repo.pendingScope(ctx, customerID).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}))
}

// FindByID returns any order by primary id.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *orderRepository) first(query *gorm.DB) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := query.First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM)
}

// CreatePending inserts order as the customer's pending order.
func (repo *orderRepository) CreatePending(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.Status = entity.OrderStatusPending
	if order.Version == 0 {
		order.Version = 1
	}

	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isPendingOrderViolation(err) {
			return repository.ErrPendingOrderExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("order customer does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// ReplacePendingProducts overwrites the products document and bumps the version.
func (repo *orderRepository) ReplacePendingProducts(ctx context.Context, customerID uuid.UUID, products entity.Products) (*entity.Order, error) {
	encoded, err := encodeProducts(products)
	if err != nil {
		return nil, err
	}

	result := repo.pendingScope(ctx, customerID).
		Model(&model.OrderModel{}).
		Updates(map[string]any{
			"products":   encoded,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order products")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return repo.FindPending(ctx, customerID)
}

// DeletePending removes the pending order if there is one.
func (repo *orderRepository) DeletePending(ctx context.Context, customerID uuid.UUID) error {
	if err := repo.pendingScope(ctx, customerID).Delete(&model.OrderModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete pending order")
	}

	return nil
}

// Exec runs a prepared statement. '?' placeholders are rebound by the dialect.
func (repo *orderRepository) Exec(ctx context.Context, stmt repository.Statement) (int64, error) {
	result := repo.db.WithContext(ctx).Exec(stmt.SQL, stmt.Args...)
	if result.Error != nil {
		if isPendingOrderViolation(result.Error) {
			return 0, repository.ErrPendingOrderExists
		}
		if isCheckConstraintViolation(result.Error) {
			return 0, domainerrors.ErrValidationFailed.WrapMessage("value rejected by order constraints")
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to execute order statement")
	}

	return result.RowsAffected, nil
}

func encodeProducts(products entity.Products) (datatypes.JSON, error) {
	if products == nil {
		products = entity.Products{}
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order products")
	}

	return datatypes.JSON(raw), nil
}

func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	products := entity.Products{}
	if len(data.Products) > 0 {
		if err := json.Unmarshal(data.Products, &products); err != nil {
			return nil, errors.Wrap(err, "failed to decode order products")
		}
	}

	return &entity.Order{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Status:     entity.OrderStatus(data.Status),
		Products:   products,
		Version:    data.Version,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}, nil
}

func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	products, err := encodeProducts(data.Products)
	if err != nil {
		return nil, err
	}

	return &model.OrderModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Status:     string(data.Status),
		Products:   products,
		Version:    data.Version,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}, nil
}
