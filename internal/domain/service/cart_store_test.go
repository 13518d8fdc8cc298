package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptek/internal/domain/entity"
	"laptek/pkg/errors"
)

var macBook = entity.ProductRef{ID: "1", Name: `MacBook Pro 16" M3 Max`, Price: 3499, Image: "/images/macbook.jpg"}

func newCart(t *testing.T, state *memoryState[entity.CartState]) *CartStore {
	t.Helper()
	store, err := NewCartStore(context.Background(), state)
	require.NoError(t, err)
	return store
}

func TestCartStore_AddItemMergesRepeats(t *testing.T) {
	ctx := context.Background()
	state := &memoryState[entity.CartState]{}
	cart := newCart(t, state)

	require.NoError(t, cart.AddItem(ctx, macBook))
	require.NoError(t, cart.AddItem(ctx, macBook))

	want := []entity.CartItem{{ID: "1", Name: macBook.Name, Price: 3499, Image: macBook.Image, Quantity: 2}}
	if diff := cmp.Diff(want, cart.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6998.0, cart.Total())
	assert.Equal(t, 2, cart.Count())
	assert.Equal(t, cart.Items(), state.state.Items)
	assert.Equal(t, 2, state.saves)
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	cart := newCart(t, &memoryState[entity.CartState]{})
	require.NoError(t, cart.AddItem(ctx, macBook))
	require.NoError(t, cart.AddItem(ctx, entity.ProductRef{ID: "4", Name: "Sony WH-1000XM5", Price: 348}))

	require.NoError(t, cart.UpdateQuantity(ctx, "4", 3))
	item, ok := cart.Find("4")
	require.True(t, ok)
	assert.Equal(t, 3, item.Quantity)

	require.NoError(t, cart.UpdateQuantity(ctx, "1", 0))
	_, ok = cart.Find("1")
	assert.False(t, ok)

	require.NoError(t, cart.UpdateQuantity(ctx, "4", -2))
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartStore_UpdateQuantityUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	cart := newCart(t, &memoryState[entity.CartState]{})
	require.NoError(t, cart.AddItem(ctx, macBook))

	require.NoError(t, cart.UpdateQuantity(ctx, "missing", 5))
	assert.Equal(t, 1, cart.Count())
}

func TestCartStore_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	state := &memoryState[entity.CartState]{}
	cart := newCart(t, state)

	for i := 0; i < 3; i++ {
		require.NoError(t, cart.AddItem(ctx, entity.ProductRef{
			ID:    gofakeit.UUID(),
			Name:  gofakeit.ProductName(),
			Price: gofakeit.Price(1, 500),
		}))
	}
	first := cart.Items()[0]

	require.NoError(t, cart.RemoveItem(ctx, first.ID))
	assert.Len(t, cart.Items(), 2)
	require.NoError(t, cart.RemoveItem(ctx, "not-there"))
	assert.Len(t, cart.Items(), 2)

	require.NoError(t, cart.ClearCart(ctx))
	assert.Empty(t, cart.Items())
	assert.NotNil(t, state.state.Items)
	assert.Empty(t, state.state.Items)
}

func TestCartStore_TotalAvoidsFloatDrift(t *testing.T) {
	ctx := context.Background()
	cart := newCart(t, &memoryState[entity.CartState]{})
	require.NoError(t, cart.AddItem(ctx, entity.ProductRef{ID: "a", Price: 0.1}))
	require.NoError(t, cart.AddItem(ctx, entity.ProductRef{ID: "b", Price: 0.2}))

	assert.Equal(t, 0.3, cart.Total())
}

func TestCartStore_RestoresPersistedState(t *testing.T) {
	state := &memoryState[entity.CartState]{state: entity.CartState{Items: []entity.CartItem{
		{ID: "1", Price: 10, Quantity: 1},
		{ID: "2", Price: 5, Quantity: 0},
		{ID: "1", Price: 10, Quantity: 2},
	}}}

	cart := newCart(t, state)

	assert.Equal(t, []entity.CartItem{{ID: "1", Price: 10, Quantity: 3}}, cart.Items())
	assert.Equal(t, 30.0, cart.Total())
}

func TestCartStore_LoadFailure(t *testing.T) {
	_, err := NewCartStore(context.Background(), &memoryState[entity.CartState]{loadErr: stderrors.New("io")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}

func TestCartStore_SaveFailureKeepsMutation(t *testing.T) {
	ctx := context.Background()
	state := &memoryState[entity.CartState]{saveErr: stderrors.New("quota exceeded")}
	cart := newCart(t, state)

	err := cart.AddItem(ctx, macBook)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
	assert.Equal(t, 1, cart.Count())
}
