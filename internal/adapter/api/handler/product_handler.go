package handler

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"laptek/internal/domain/entity"
	"laptek/internal/infrastructure/storage"
	"laptek/internal/usecase"
	"laptek/pkg/errors"
	"laptek/pkg/logger"
	"laptek/pkg/response"
)

const maxProductImageSize = 5 << 20

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// ListProducts accepts ?min_price=&max_price= and repeated ?category= and ?brand=.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	minPrice, err := floatParam(c, "min_price")
	if err != nil {
		return response.Error(c, err)
	}
	maxPrice, err := floatParam(c, "max_price")
	if err != nil {
		return response.Error(c, err)
	}

	req := usecase.ListProductsRequest{
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Categories: c.QueryParams()["category"],
		Brands:     c.QueryParams()["brand"],
	}

	result, err := h.productUseCase.List(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	products, err := h.productUseCase.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var draft entity.ProductDraft
	if err := c.Bind(&draft); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	product, err := h.productUseCase.Create(c.Request().Context(), draft)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, product)
}

// UploadImage takes a multipart "file" and returns the public URL.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("File is required", err))
	}

	contentType := file.Header.Get("Content-Type")
	if !storage.IsSupportedImage(contentType) {
		return response.Error(c, errors.BadRequest("Unsupported image type: "+contentType, nil))
	}
	if file.Size > maxProductImageSize {
		return response.Error(c, errors.BadRequest("Image must be 5MB or smaller", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read upload", err))
	}
	defer src.Close()

	url, err := h.productUseCase.UploadImage(c.Request().Context(), src, contentType)
	if err != nil {
		return response.Error(c, err)
	}

	logger.Info("Uploaded product image %s (%d bytes)", url, file.Size)
	return response.Created(c, map[string]string{
		"url": url,
	})
}

func floatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.BadRequest("Invalid "+name, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, errors.BadRequest("Invalid "+name, nil)
	}
	return &value, nil
}
