package service

import (
	"context"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/pkg/errors"
)

// WishlistStore holds one shopper's saved products. Same ownership rules as CartStore.
type WishlistStore struct {
	items []entity.WishlistItem
	repo  repository.StateRepository[entity.WishlistState]
}

func NewWishlistStore(ctx context.Context, repo repository.StateRepository[entity.WishlistState]) (*WishlistStore, error) {
	state, err := repo.Load(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to load wishlist", err)
	}

	items := make([]entity.WishlistItem, 0, len(state.Items))
	seen := make(map[string]bool, len(state.Items))
	for _, item := range state.Items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		items = append(items, item)
	}

	return &WishlistStore{items: items, repo: repo}, nil
}

// AddItem is idempotent: a product already on the list is left untouched.
// It reports whether the item was inserted.
func (s *WishlistStore) AddItem(ctx context.Context, item entity.WishlistItem) (bool, error) {
	if s.IsInWishlist(item.ID) {
		return false, nil
	}

	s.items = append(s.items, item)
	return true, s.persist(ctx)
}

func (s *WishlistStore) RemoveItem(ctx context.Context, id string) error {
	kept := make([]entity.WishlistItem, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.persist(ctx)
}

func (s *WishlistStore) IsInWishlist(id string) bool {
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (s *WishlistStore) ClearWishlist(ctx context.Context) error {
	s.items = []entity.WishlistItem{}
	return s.persist(ctx)
}

func (s *WishlistStore) Items() []entity.WishlistItem {
	items := make([]entity.WishlistItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *WishlistStore) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, entity.WishlistState{Items: s.Items()}); err != nil {
		return errors.Internal("Failed to save wishlist", err)
	}
	return nil
}
