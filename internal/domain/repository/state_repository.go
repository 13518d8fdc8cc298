package repository

import (
	"context"
)

// StateRepository is the persistence adapter behind the cart and wishlist stores.
// Load returns the empty state when nothing has been saved yet.
type StateRepository[S any] interface {
	Load(ctx context.Context) (S, error)
	Save(ctx context.Context, state S) error
}

// StateRepositoryFactory opens the state stored under key.
type StateRepositoryFactory[S any] func(key string) StateRepository[S]
