package usecase

import (
	"context"
	"strings"
	"time"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/internal/domain/service"
	"laptek/pkg/errors"
	"laptek/pkg/logger"
)

type CartUseCase struct {
	carts       repository.StateRepositoryFactory[entity.CartState]
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	invoices    *InvoiceUseCase
	settings    StoreSettings
	locks       *keyedMutex
	now         func() time.Time
}

func NewCartUseCase(
	carts repository.StateRepositoryFactory[entity.CartState],
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	invoices *InvoiceUseCase,
	settings StoreSettings,
) *CartUseCase {
	return &CartUseCase{
		carts:       carts,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		invoices:    invoices,
		settings:    settings,
		locks:       newKeyedMutex(),
		now:         time.Now,
	}
}

type CartView struct {
	Items []entity.CartItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

type AddCartItemRequest struct {
	ID string `json:"id" validate:"required"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type CheckoutRequest struct {
	CustomerName   string `json:"customer_name" validate:"required"`
	ShippingRegion string `json:"shipping_region" validate:"required"`
}

type CheckoutResult struct {
	Order   *entity.Order   `json:"order"`
	Invoice *entity.Invoice `json:"invoice"`
}

func (uc *CartUseCase) GetCart(ctx context.Context, owner string) (*CartView, error) {
	var view *CartView
	err := uc.withCart(ctx, owner, func(cart *service.CartStore) error {
		view = cartView(cart)
		return nil
	})
	return view, err
}

// AddItem resolves the product from the catalog so the cart never trusts a client price.
func (uc *CartUseCase) AddItem(ctx context.Context, owner string, req AddCartItemRequest) (*CartView, error) {
	product, err := uc.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if product.Status == entity.ProductStatusDraft {
		return nil, errors.NotFound("Product", nil)
	}

	var view *CartView
	err = uc.withCart(ctx, owner, func(cart *service.CartStore) error {
		err := cart.AddItem(ctx, product.Ref())
		view = cartView(cart)
		return err
	})
	return view, err
}

func (uc *CartUseCase) UpdateQuantity(ctx context.Context, owner, productID string, quantity int) (*CartView, error) {
	var view *CartView
	err := uc.withCart(ctx, owner, func(cart *service.CartStore) error {
		if _, ok := cart.Find(productID); !ok {
			return errors.NotFound("Cart item", nil)
		}
		err := cart.UpdateQuantity(ctx, productID, quantity)
		view = cartView(cart)
		return err
	})
	return view, err
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, owner, productID string) (*CartView, error) {
	var view *CartView
	err := uc.withCart(ctx, owner, func(cart *service.CartStore) error {
		err := cart.RemoveItem(ctx, productID)
		view = cartView(cart)
		return err
	})
	return view, err
}

func (uc *CartUseCase) ClearCart(ctx context.Context, owner string) (*CartView, error) {
	var view *CartView
	err := uc.withCart(ctx, owner, func(cart *service.CartStore) error {
		err := cart.ClearCart(ctx)
		view = cartView(cart)
		return err
	})
	return view, err
}

// Checkout turns the signed-in shopper's cart into an order and a sale invoice,
// then empties the cart.
func (uc *CartUseCase) Checkout(ctx context.Context, uid, email string, req CheckoutRequest) (*CheckoutResult, error) {
	rate, ok := uc.settings.ShippingRate(req.ShippingRegion)
	if !ok {
		return nil, errors.BadRequest("Unsupported shipping region", nil)
	}

	var result *CheckoutResult
	err := uc.withCart(ctx, uid, func(cart *service.CartStore) error {
		items := cart.Items()
		if len(items) == 0 {
			return errors.BadRequest("Cart is empty", nil)
		}

		totals := service.PriceOrder(items, rate, uc.settings.TaxRate())
		now := uc.now()
		order := &entity.Order{
			UserID:         uid,
			CustomerName:   strings.TrimSpace(req.CustomerName),
			CustomerEmail:  email,
			Items:          items,
			Subtotal:       totals.Subtotal,
			Shipping:       totals.Shipping,
			Tax:            totals.Tax,
			Total:          totals.Total,
			Currency:       uc.settings.Currency(),
			ShippingRegion: rate.Region,
			Status:         entity.OrderStatusPending,
			CreatedAt:      now,
		}
		if err := uc.orderRepo.Create(ctx, order); err != nil {
			return err
		}

		invoice, err := uc.invoices.CreateForOrder(ctx, order)
		if err != nil {
			if delErr := uc.orderRepo.Delete(ctx, order.ID); delErr != nil {
				logger.Error("Failed to roll back order %s after invoicing failed: %v", order.ID, delErr)
			}
			return err
		}

		if err := cart.ClearCart(ctx); err != nil {
			logger.Error("Order %s placed but cart for %s was not cleared: %v", order.ID, uid, err)
		}

		logger.Info("Order %s placed by %s: %.2f %s", order.ID, uid, order.Total, order.Currency)
		result = &CheckoutResult{Order: order, Invoice: invoice}
		return nil
	})
	return result, err
}

func (uc *CartUseCase) withCart(ctx context.Context, owner string, fn func(cart *service.CartStore) error) error {
	key := entity.StorageKey(entity.CartNamespace, owner)
	unlock := uc.locks.Lock(key)
	defer unlock()

	cart, err := service.NewCartStore(ctx, uc.carts(key))
	if err != nil {
		return err
	}
	return fn(cart)
}

func cartView(cart *service.CartStore) *CartView {
	return &CartView{
		Items: cart.Items(),
		Total: cart.Total(),
		Count: cart.Count(),
	}
}
