package service

import (
	"context"

	"github.com/shopspring/decimal"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/pkg/errors"
)

// CartStore holds one shopper's cart. It is not safe for concurrent use;
// callers own a store exclusively for the duration of a request.
type CartStore struct {
	items []entity.CartItem
	repo  repository.StateRepository[entity.CartState]
}

// NewCartStore reads the persisted cart once.
func NewCartStore(ctx context.Context, repo repository.StateRepository[entity.CartState]) (*CartStore, error) {
	state, err := repo.Load(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to load cart", err)
	}

	return &CartStore{
		items: normalizeCartItems(state.Items),
		repo:  repo,
	}, nil
}

// AddItem merges repeat additions of the same product into one line.
func (s *CartStore) AddItem(ctx context.Context, product entity.ProductRef) error {
	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			return s.persist(ctx)
		}
	}

	s.items = append(s.items, entity.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Image:    product.Image,
		Quantity: 1,
	})
	return s.persist(ctx)
}

func (s *CartStore) RemoveItem(ctx context.Context, id string) error {
	s.items = filterCartItems(s.items, func(item entity.CartItem) bool {
		return item.ID != id
	})
	return s.persist(ctx)
}

// UpdateQuantity clamps negative quantities to zero and drops lines that reach zero.
func (s *CartStore) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = max(0, quantity)
		}
	}
	s.items = filterCartItems(s.items, func(item entity.CartItem) bool {
		return item.Quantity > 0
	})
	return s.persist(ctx)
}

func (s *CartStore) ClearCart(ctx context.Context) error {
	s.items = []entity.CartItem{}
	return s.persist(ctx)
}

// Total is recomputed on every call.
func (s *CartStore) Total() float64 {
	return cartTotal(s.items).InexactFloat64()
}

// Count is the number of units across all lines.
func (s *CartStore) Count() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *CartStore) Items() []entity.CartItem {
	items := make([]entity.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CartStore) Find(id string) (entity.CartItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return entity.CartItem{}, false
}

func (s *CartStore) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, entity.CartState{Items: s.Items()}); err != nil {
		return errors.Internal("Failed to save cart", err)
	}
	return nil
}

func cartTotal(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

func filterCartItems(items []entity.CartItem, keep func(entity.CartItem) bool) []entity.CartItem {
	kept := make([]entity.CartItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

// normalizeCartItems repairs a persisted blob: one line per id, no empty lines.
func normalizeCartItems(items []entity.CartItem) []entity.CartItem {
	normalized := make([]entity.CartItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if i, ok := index[item.ID]; ok {
			normalized[i].Quantity += item.Quantity
			continue
		}
		index[item.ID] = len(normalized)
		normalized = append(normalized, item)
	}
	return normalized
}
