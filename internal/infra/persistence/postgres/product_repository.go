package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns every product ordered by id.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var rows []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductDomain(&rows[i]))
	}

	return products, nil
}

// FindByID returns one product.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// Create inserts the product and fills in the generated id.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := &model.ProductModel{
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		ImageID:     product.ImageID,
		CreatedAt:   product.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrImageNotFound.WrapMessage("product image does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		ImageID:     data.ImageID,
		CreatedAt:   data.CreatedAt,
	}
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

// FindByID returns image metadata.
func (repo *imageRepository) FindByID(ctx context.Context, id string) (*entity.Image, error) {
	var imageM model.ImageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image")
	}

	return &entity.Image{
		ID:          imageM.ID,
		Title:       imageM.Title,
		Type:        imageM.Type,
		ContentType: imageM.ContentType,
		Size:        imageM.Size,
		Checksum:    imageM.Checksum,
		CreatedAt:   imageM.CreatedAt,
	}, nil
}

// Create inserts image metadata.
func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	imageM := &model.ImageModel{
		ID:          image.ID,
		Title:       image.Title,
		Type:        image.Type,
		ContentType: image.ContentType,
		Size:        image.Size,
		Checksum:    image.Checksum,
		CreatedAt:   image.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create image")
	}
	image.CreatedAt = imageM.CreatedAt

	return nil
}
