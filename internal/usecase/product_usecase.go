package usecase

import (
	"context"
	"io"
	"time"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/internal/domain/service"
	"laptek/pkg/errors"
	"laptek/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	categories  *CategoryUseCase
	uploader    ImageUploader
	now         func() time.Time
}

func NewProductUseCase(productRepo repository.ProductRepository, categories *CategoryUseCase, uploader ImageUploader) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		categories:  categories,
		uploader:    uploader,
		now:         time.Now,
	}
}

// ListProductsRequest carries the shopper's narrowing. Nil price bounds fall
// back to the derived [0, maxPrice] range.
type ListProductsRequest struct {
	MinPrice   *float64
	MaxPrice   *float64
	Categories []string
	Brands     []string
}

type ProductListResult struct {
	Items   []*entity.Product    `json:"items"`
	Total   int                  `json:"total"`
	Options entity.FilterOptions `json:"options"`
	Filters entity.FilterState   `json:"filters"`
}

// List loads every active product because the filter options must come
// from the unfiltered set; narrowing happens in memory.
func (uc *ProductUseCase) List(ctx context.Context, req ListProductsRequest) (*ProductListResult, error) {
	visible, err := uc.productRepo.List(ctx, repository.ProductQuery{Status: entity.ProductStatusActive})
	if err != nil {
		return nil, err
	}

	options := service.DeriveFilterOptions(visible)
	filters := service.DefaultFilterState(options)
	if req.MinPrice != nil {
		filters.PriceRange[0] = *req.MinPrice
	}
	if req.MaxPrice != nil {
		filters.PriceRange[1] = *req.MaxPrice
	}
	if filters.PriceRange[0] > filters.PriceRange[1] {
		return nil, errors.BadRequest("min_price must not exceed max_price", nil)
	}
	if len(req.Categories) > 0 {
		filters.Categories = req.Categories
	}
	if len(req.Brands) > 0 {
		filters.Brands = req.Brands
	}

	items := service.FilterProducts(filters, visible)
	return &ProductListResult{
		Items:   items,
		Total:   len(items),
		Options: options,
		Filters: filters,
	}, nil
}

// Search never touches the repository for queries below the minimum length.
func (uc *ProductUseCase) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	prefix, ok := service.NormalizeSearchQuery(query)
	if !ok {
		return []*entity.Product{}, nil
	}

	return uc.productRepo.List(ctx, repository.ProductQuery{
		Status:     entity.ProductStatusActive,
		NamePrefix: prefix,
		Limit:      service.MaxSearchResults,
	})
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Status == entity.ProductStatusDraft {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

// Create validates the admin draft against its category before anything is written.
func (uc *ProductUseCase) Create(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error) {
	var category *entity.Category
	if draft.CategoryID != "" {
		c, err := uc.categories.Get(ctx, draft.CategoryID)
		if err != nil && !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		category = c
	}

	if err := service.ValidateProductDraft(draft, category); err != nil {
		return nil, err
	}

	product := service.BuildProduct(draft, category, uc.now())
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product %s created in %s", product.ID, product.Category)
	return product, nil
}

func (uc *ProductUseCase) UploadImage(ctx context.Context, file io.Reader, contentType string) (string, error) {
	if uc.uploader == nil {
		return "", errors.New("STORAGE_UNAVAILABLE", "Image storage is not configured", 503, nil)
	}

	url, err := uc.uploader.UploadProductImage(ctx, file, contentType)
	if err != nil {
		return "", errors.Upstream("Failed to upload image", err)
	}
	return url, nil
}

// StreamCatalog forwards catalog changes to publisher until ctx is done or the
// watch ends.
func (uc *ProductUseCase) StreamCatalog(ctx context.Context, publisher CatalogPublisher) error {
	events, err := uc.productRepo.Watch(ctx)
	if err != nil {
		return err
	}

	for event := range events {
		if event.Product != nil && event.Product.Status == entity.ProductStatusDraft && event.Type != entity.ProductRemoved {
			continue
		}
		if err := publisher.Publish(event); err != nil {
			logger.Warn("Failed to publish catalog event: %v", err)
		}
	}
	return ctx.Err()
}

// Seed writes products under their own ids, overwriting earlier copies.
func (uc *ProductUseCase) Seed(ctx context.Context, products []*entity.Product) (int, error) {
	for i, p := range products {
		if err := uc.productRepo.Create(ctx, p); err != nil {
			return i, err
		}
	}
	return len(products), nil
}
