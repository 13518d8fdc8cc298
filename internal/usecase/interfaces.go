package usecase

import (
	"context"
	"io"

	"laptek/internal/domain/entity"
)

// StoreSettings is the static shop configuration checkout and the category
// fallback read from.
type StoreSettings interface {
	Currency() string
	TaxRate() float64
	ShippingRate(region string) (*entity.ShippingRate, bool)
	ActiveCategories() []*entity.Category
	Category(id string) (*entity.Category, bool)
	MarketplaceSettings() []*entity.MarketplaceSettings
}

type ImageUploader interface {
	UploadProductImage(ctx context.Context, file io.Reader, contentType string) (string, error)
}

type PriceChecker interface {
	Check(ctx context.Context, query string) *entity.PriceCheckResult
}

// TextGenerator produces text from one prompt with the named model.
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

type AdminClaimSetter interface {
	SetAdminClaim(ctx context.Context, uid string, admin bool) error
}

// CatalogPublisher receives live catalog changes.
type CatalogPublisher interface {
	Publish(event entity.ProductEvent) error
}
