package usecase

import (
	"context"
	"strings"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/pkg/errors"
	"laptek/pkg/logger"
)

type MarketplaceUseCase struct {
	marketplaceRepo repository.MarketplaceRepository
	settings        StoreSettings
	checker         PriceChecker
}

func NewMarketplaceUseCase(marketplaceRepo repository.MarketplaceRepository, settings StoreSettings, checker PriceChecker) *MarketplaceUseCase {
	return &MarketplaceUseCase{
		marketplaceRepo: marketplaceRepo,
		settings:        settings,
		checker:         checker,
	}
}

type UpdateMarketplaceRequest struct {
	Enabled      *bool `json:"enabled"`
	AutoSync     *bool `json:"auto_sync"`
	SyncInterval *int  `json:"sync_interval" validate:"omitempty,min=5,max=1440"`
}

type PriceCheckRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
}

func (uc *MarketplaceUseCase) List(ctx context.Context) ([]*entity.MarketplaceSettings, error) {
	stored, err := uc.marketplaceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.MarketplaceSettings, len(stored))
	for _, s := range stored {
		byID[s.ID] = s
	}

	result := make([]*entity.MarketplaceSettings, 0, len(stored))
	for _, d := range uc.settings.MarketplaceSettings() {
		if s, ok := byID[d.ID]; ok {
			result = append(result, s)
			continue
		}
		result = append(result, d)
	}
	return result, nil
}

// Update applies a partial change to one of the known marketplaces.
func (uc *MarketplaceUseCase) Update(ctx context.Context, id string, req UpdateMarketplaceRequest) (*entity.MarketplaceSettings, error) {
	current, err := uc.marketplaceRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		current = uc.defaultSettings(id)
		if current == nil {
			return nil, errors.NotFound("Marketplace", nil)
		}
	}

	if req.Enabled != nil {
		current.Enabled = *req.Enabled
	}
	if req.AutoSync != nil {
		current.SyncSettings.AutoSync = *req.AutoSync
	}
	if req.SyncInterval != nil {
		current.SyncSettings.SyncInterval = *req.SyncInterval
	}

	if err := uc.marketplaceRepo.Upsert(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// PriceCheck compares competitor prices. A check that finds nothing is a
// successful call with Success=false, not an error.
func (uc *MarketplaceUseCase) PriceCheck(ctx context.Context, req PriceCheckRequest) (*entity.PriceCheckResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.BadRequest("Search query is required", nil)
	}

	logger.Info("[Price Check] Query: %q, Category: %s, Brand: %s", query, req.Category, req.Brand)
	return uc.checker.Check(ctx, query), nil
}

func (uc *MarketplaceUseCase) defaultSettings(id string) *entity.MarketplaceSettings {
	for _, d := range uc.settings.MarketplaceSettings() {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// Seed stores the default settings for every marketplace not yet configured.
func (uc *MarketplaceUseCase) Seed(ctx context.Context) (int, error) {
	seeded := 0
	for _, d := range uc.settings.MarketplaceSettings() {
		_, err := uc.marketplaceRepo.GetByID(ctx, d.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, "NOT_FOUND") {
			return seeded, err
		}
		if err := uc.marketplaceRepo.Upsert(ctx, d); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
