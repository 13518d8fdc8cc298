package repository

import (
	"context"

	"laptek/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Upsert(ctx context.Context, category *entity.Category) error
}
