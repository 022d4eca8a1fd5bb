package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

var (
	// ErrProductNotFound is returned when a product id does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrImageNotFound is returned when an image id does not exist.
	ErrImageNotFound = errors.New("image not found")
)

// ProductRepository defines catalog persistence.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
}

// ImageRepository persists image metadata. Image bytes are kept by service.ImageStorage.
type ImageRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Image, error)
	Create(ctx context.Context, image *entity.Image) error
}
