package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptek/internal/domain/entity"
	"laptek/pkg/errors"
)

func TestCategoryUseCase_FallsBackToBuiltIn(t *testing.T) {
	uc := NewCategoryUseCase(&fakeCategoryRepo{categories: map[string]*entity.Category{}}, mustStore())
	ctx := context.Background()

	categories, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 5)

	laptops, err := uc.Get(ctx, "laptops")
	require.NoError(t, err)
	assert.Equal(t, "Computers/Laptops", laptops.Code)

	_, err = uc.Get(ctx, "spaceships")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCategoryUseCase_StoredTaxonomyWins(t *testing.T) {
	repo := &fakeCategoryRepo{categories: map[string]*entity.Category{
		"laptops": {ID: "laptops", Name: "Notebooks", Code: "Computers/Notebooks", Active: true},
	}}
	uc := NewCategoryUseCase(repo, mustStore())
	ctx := context.Background()

	categories, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Notebooks", categories[0].Name)

	monitors, err := uc.Get(ctx, "monitors")
	require.NoError(t, err)
	assert.Equal(t, []string{"brand", "screen_size", "resolution"}, monitors.RequiredFields)
}

func TestCategoryUseCase_Seed(t *testing.T) {
	repo := &fakeCategoryRepo{categories: map[string]*entity.Category{}}
	uc := NewCategoryUseCase(repo, mustStore())

	n, err := uc.Seed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Contains(t, repo.categories, "peripherals")
}
