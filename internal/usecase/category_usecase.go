package usecase

import (
	"context"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	settings     StoreSettings
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository, settings StoreSettings) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		settings:     settings,
	}
}

// List serves the stored taxonomy, or the built-in one when nothing has been stored yet.
func (uc *CategoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return uc.settings.ActiveCategories(), nil
	}
	return categories, nil
}

func (uc *CategoryUseCase) Get(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if fallback, ok := uc.settings.Category(id); ok {
		return fallback, nil
	}
	return nil, err
}

// Seed writes the built-in taxonomy to the repository.
func (uc *CategoryUseCase) Seed(ctx context.Context) (int, error) {
	categories := uc.settings.ActiveCategories()
	for _, c := range categories {
		if err := uc.categoryRepo.Upsert(ctx, c); err != nil {
			return 0, err
		}
	}
	return len(categories), nil
}
