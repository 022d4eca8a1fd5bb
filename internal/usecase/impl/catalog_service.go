package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	imageRepo   repository.ImageRepository
	storage     service.ImageStorage
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	ImageRepo   repository.ImageRepository
	Storage     service.ImageStorage
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		imageRepo:   params.ImageRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the catalog. An empty catalog is an empty, non-nil slice.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	if products == nil {
		products = []*entity.Product{}
	}

	return products, nil
}

// GetProduct returns one product.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct stores the image bytes, then inserts image and product rows in
// one transaction. The stored object is removed again if the rows cannot be written.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	image, err := srv.storeImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Title:       title,
		Description: input.Description,
		Price:       input.Price,
		ImageID:     image.ID,
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ImageRepo().Create(ctx, image); err != nil {
			return errors.Wrap(err, "failed to insert image")
		}

		return errors.Wrap(repoFactory.ProductRepo().Create(ctx, product), "failed to insert product")
	})
	if err != nil {
		srv.discardObject(ctx, image)

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("imageID", image.ID))

	return product, nil
}

// UploadImage stores a standalone image.
func (srv *catalogService) UploadImage(ctx context.Context, input usecase.UploadInput) (*entity.Image, error) {
	image, err := srv.storeImage(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := srv.imageRepo.Create(ctx, image); err != nil {
		srv.discardObject(ctx, image)

		return nil, errors.Wrap(err, "failed to insert image")
	}

	return image, nil
}

// OpenImage returns the metadata and a reader over the stored bytes.
func (srv *catalogService) OpenImage(ctx context.Context, id string) (*entity.Image, io.ReadCloser, error) {
	image, err := srv.imageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrImageNotFound, "image not found")
		}

		return nil, nil, errors.Wrap(err, "failed to get image")
	}

	reader, err := srv.storage.Open(ctx, image.StorageKey())
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			srv.log(ctx).Warn("Image row has no stored object", slog.String("imageID", id))

			return nil, nil, errors.Wrap(domainerrors.ErrImageNotFound, "image bytes missing")
		}

		return nil, nil, errors.Wrap(err, "failed to open image")
	}

	return image, reader, nil
}

func (srv *catalogService) storeImage(ctx context.Context, input usecase.UploadInput) (*entity.Image, error) {
	if len(input.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is required")
	}

	image, err := newImage(input)
	if err != nil {
		return nil, err
	}
	if err := srv.storage.Save(ctx, image.StorageKey(), image.ContentType, input.Data); err != nil {
		srv.log(ctx).Error("Failed to store image", slog.String("imageID", image.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store image")
	}
	srv.log(ctx).Debug("Image stored", slog.String("imageID", image.ID), slog.String("size", util.FormatBytes(image.Size)))

	return image, nil
}

func (srv *catalogService) discardObject(ctx context.Context, image *entity.Image) {
	if err := srv.storage.Delete(ctx, image.StorageKey()); err != nil {
		srv.log(ctx).Warn("Failed to remove orphaned image", slog.String("imageID", image.ID), slog.Any("error", err))
	}
}

// Column widths of images.type and images.content_type.
const (
	maxImageTypeLength   = 16
	maxContentTypeLength = 128
)

func newImage(input usecase.UploadInput) (*entity.Image, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Filename), "."))
	if len(ext) > maxImageTypeLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("file extension must be at most %d bytes", maxImageTypeLength))
	}

	contentType := input.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		if byExt := mime.TypeByExtension("." + ext); ext != "" && byExt != "" {
			contentType = byExt
		} else {
			contentType = http.DetectContentType(input.Data)
		}
	}
	if len(contentType) > maxContentTypeLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("content type must be at most %d bytes", maxContentTypeLength))
	}

	return &entity.Image{
		ID:          uuid.NewString(),
		Title:       filepath.Base(input.Filename),
		Type:        ext,
		ContentType: contentType,
		Size:        int64(len(input.Data)),
		Checksum:    util.Checksum(input.Data),
	}, nil
}
