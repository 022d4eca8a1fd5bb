package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// UploadInput is an uploaded file.
type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateProductInput defines a new catalog entry together with its image.
type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	Image       UploadInput
}

// CatalogUsecase exposes products and their images.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	UploadImage(ctx context.Context, input UploadInput) (*entity.Image, error)
	// OpenImage returns the image metadata and a reader over its bytes. The caller closes the reader.
	OpenImage(ctx context.Context, id string) (*entity.Image, io.ReadCloser, error)
}
