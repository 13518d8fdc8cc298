package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptek/internal/domain/entity"
	"laptek/pkg/errors"
)

type stubPriceChecker struct {
	queries []string
	result  *entity.PriceCheckResult
}

func (c *stubPriceChecker) Check(ctx context.Context, query string) *entity.PriceCheckResult {
	c.queries = append(c.queries, query)
	return c.result
}

func newMarketplaceUseCase(checker PriceChecker) (*MarketplaceUseCase, *fakeMarketplaceRepo) {
	repo := &fakeMarketplaceRepo{settings: map[string]*entity.MarketplaceSettings{}}
	return NewMarketplaceUseCase(repo, mustStore(), checker), repo
}

func TestMarketplaceUseCase_ListMergesDefaults(t *testing.T) {
	uc, repo := newMarketplaceUseCase(nil)
	repo.settings["bestbuy"] = &entity.MarketplaceSettings{ID: "bestbuy", Marketplace: "bestbuy", Enabled: true}

	settings, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, "walmart", settings[0].ID)
	assert.False(t, settings[0].Enabled)
	assert.Equal(t, 60, settings[0].SyncSettings.SyncInterval)
	assert.True(t, settings[1].Enabled)
}

func TestMarketplaceUseCase_UpdateIsPartial(t *testing.T) {
	uc, repo := newMarketplaceUseCase(nil)
	ctx := context.Background()
	enabled := true
	interval := 30

	updated, err := uc.Update(ctx, "walmart", UpdateMarketplaceRequest{Enabled: &enabled})
	require.NoError(t, err)
	assert.True(t, updated.Enabled)
	assert.Equal(t, 60, updated.SyncSettings.SyncInterval)

	updated, err = uc.Update(ctx, "walmart", UpdateMarketplaceRequest{SyncInterval: &interval})
	require.NoError(t, err)
	assert.True(t, updated.Enabled)
	assert.Equal(t, 30, repo.settings["walmart"].SyncSettings.SyncInterval)

	_, err = uc.Update(ctx, "amazon", UpdateMarketplaceRequest{Enabled: &enabled})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestMarketplaceUseCase_PriceCheck(t *testing.T) {
	checker := &stubPriceChecker{result: &entity.PriceCheckResult{
		Success: true,
		Walmart: &entity.CompetitorPrice{Price: 1299.99, URL: "https://www.walmart.ca/search?q=Dell%20XPS"},
		Demand:  "Medium",
	}}
	uc, _ := newMarketplaceUseCase(checker)
	ctx := context.Background()

	result, err := uc.PriceCheck(ctx, PriceCheckRequest{Query: "  Dell XPS "})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"Dell XPS"}, checker.queries)

	_, err = uc.PriceCheck(ctx, PriceCheckRequest{Query: "   "})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Len(t, checker.queries, 1)
}

func TestMarketplaceUseCase_Seed(t *testing.T) {
	uc, repo := newMarketplaceUseCase(nil)
	repo.settings["walmart"] = &entity.MarketplaceSettings{ID: "walmart", Enabled: true}

	n, err := uc.Seed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, repo.settings["walmart"].Enabled)
	assert.Contains(t, repo.settings, "bestbuy")
}
