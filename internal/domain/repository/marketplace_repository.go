package repository

import (
	"context"

	"laptek/internal/domain/entity"
)

type MarketplaceRepository interface {
	List(ctx context.Context) ([]*entity.MarketplaceSettings, error)
	GetByID(ctx context.Context, id string) (*entity.MarketplaceSettings, error)
	Upsert(ctx context.Context, settings *entity.MarketplaceSettings) error
}
