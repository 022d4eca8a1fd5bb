package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const imageFormField = "image"

// ProductHandler serves the catalog and its images.
type ProductHandler struct {
	uc            usecase.CatalogUsecase
	maxUploadSize int64
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, cfg *config.Config) (*ProductHandler, error) {
	maxUploadSize, err := util.ParseByteSize(cfg.Storage.MaxUploadSize)
	if err != nil {
		return nil, errors.Wrap(err, "invalid storage.maxUploadSize")
	}

	return &ProductHandler{uc: uc, maxUploadSize: maxUploadSize}, nil
}

// ListProducts returns every product.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct returns one product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("product id must be an integer")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// CreateProduct reads a multipart form with title, description, price and image.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	price, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("price")), 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("price must be a number")
	}

	image, err := h.readUpload(c)
	if err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       price,
		Image:       image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UploadImage stores an image without a product.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	upload, err := h.readUpload(c)
	if err != nil {
		return err
	}

	image, err := h.uc.UploadImage(c.Request().Context(), upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, image, "Image uploaded successfully")
}

// GetImage streams the stored image bytes.
func (h *ProductHandler) GetImage(c echo.Context) error {
	image, reader, err := h.uc.OpenImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer reader.Close()

	if image.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(image.Size, 10))
	}

	return c.Stream(http.StatusOK, image.ContentType, reader)
}

func (h *ProductHandler) readUpload(c echo.Context) (usecase.UploadInput, error) {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return usecase.UploadInput{}, domainerrors.ErrValidationFailed.WithDetails("image is required")
	}
	if fileHeader.Size > h.maxUploadSize {
		return usecase.UploadInput{}, domainerrors.ErrValidationFailed.WithDetails(
			"image exceeds " + util.FormatBytes(h.maxUploadSize))
	}

	data, err := readFile(fileHeader)
	if err != nil {
		return usecase.UploadInput{}, errors.Wrap(err, "failed to read upload")
	}

	return usecase.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

func readFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)

	return data, errors.WithStack(err)
}
