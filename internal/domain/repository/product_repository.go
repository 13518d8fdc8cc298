package repository

import (
	"context"

	"laptek/internal/domain/entity"
)

// ProductQuery holds the predicates a repository pushes down to the database.
// Zero values mean "no restriction". A NamePrefix orders results by name.
type ProductQuery struct {
	Status     string
	NamePrefix string
	Limit      int
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, query ProductQuery) ([]*entity.Product, error)
	// Watch streams catalog changes until ctx is done. The channel is closed on exit.
	Watch(ctx context.Context) (<-chan entity.ProductEvent, error)
}
