package usecase

import (
	"context"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/internal/domain/service"
	"laptek/pkg/errors"
)

type WishlistUseCase struct {
	wishlists   repository.StateRepositoryFactory[entity.WishlistState]
	productRepo repository.ProductRepository
	locks       *keyedMutex
}

func NewWishlistUseCase(
	wishlists repository.StateRepositoryFactory[entity.WishlistState],
	productRepo repository.ProductRepository,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlists:   wishlists,
		productRepo: productRepo,
		locks:       newKeyedMutex(),
	}
}

type WishlistView struct {
	Items []entity.WishlistItem `json:"items"`
	Count int                   `json:"count"`
}

type AddWishlistItemRequest struct {
	ID string `json:"id" validate:"required"`
}

type WishlistStatus struct {
	ID         string `json:"id"`
	InWishlist bool   `json:"in_wishlist"`
}

func (uc *WishlistUseCase) GetWishlist(ctx context.Context, owner string) (*WishlistView, error) {
	var view *WishlistView
	err := uc.withWishlist(ctx, owner, func(w *service.WishlistStore) error {
		view = wishlistView(w)
		return nil
	})
	return view, err
}

func (uc *WishlistUseCase) AddItem(ctx context.Context, owner string, req AddWishlistItemRequest) (*WishlistView, error) {
	product, err := uc.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if product.Status == entity.ProductStatusDraft {
		return nil, errors.NotFound("Product", nil)
	}
	ref := product.Ref()

	var view *WishlistView
	err = uc.withWishlist(ctx, owner, func(w *service.WishlistStore) error {
		_, err := w.AddItem(ctx, entity.WishlistItem{
			ID:    ref.ID,
			Name:  ref.Name,
			Price: ref.Price,
			Image: ref.Image,
		})
		view = wishlistView(w)
		return err
	})
	return view, err
}

func (uc *WishlistUseCase) RemoveItem(ctx context.Context, owner, productID string) (*WishlistView, error) {
	var view *WishlistView
	err := uc.withWishlist(ctx, owner, func(w *service.WishlistStore) error {
		err := w.RemoveItem(ctx, productID)
		view = wishlistView(w)
		return err
	})
	return view, err
}

func (uc *WishlistUseCase) Status(ctx context.Context, owner, productID string) (*WishlistStatus, error) {
	var status *WishlistStatus
	err := uc.withWishlist(ctx, owner, func(w *service.WishlistStore) error {
		status = &WishlistStatus{ID: productID, InWishlist: w.IsInWishlist(productID)}
		return nil
	})
	return status, err
}

func (uc *WishlistUseCase) ClearWishlist(ctx context.Context, owner string) (*WishlistView, error) {
	var view *WishlistView
	err := uc.withWishlist(ctx, owner, func(w *service.WishlistStore) error {
		err := w.ClearWishlist(ctx)
		view = wishlistView(w)
		return err
	})
	return view, err
}

func (uc *WishlistUseCase) withWishlist(ctx context.Context, owner string, fn func(w *service.WishlistStore) error) error {
	key := entity.StorageKey(entity.WishlistNamespace, owner)
	unlock := uc.locks.Lock(key)
	defer unlock()

	w, err := service.NewWishlistStore(ctx, uc.wishlists(key))
	if err != nil {
		return err
	}
	return fn(w)
}

func wishlistView(w *service.WishlistStore) *WishlistView {
	items := w.Items()
	return &WishlistView{Items: items, Count: len(items)}
}
