package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptek/internal/domain/entity"
	"laptek/pkg/errors"
)

func seededOrders() *fakeOrderRepo {
	return &fakeOrderRepo{orders: []*entity.Order{
		{ID: "o1", UserID: "alice", Status: entity.OrderStatusPending, Total: 55.18},
		{ID: "o2", UserID: "bob", Status: entity.OrderStatusCompleted, Total: 393.24},
		{ID: "o3", UserID: "alice", Status: entity.OrderStatusCompleted, Total: 12},
	}}
}

func TestOrderUseCase_ListMine(t *testing.T) {
	uc := NewOrderUseCase(seededOrders())

	orders, total, err := uc.ListMine(context.Background(), "alice", 1, 10)

	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, o := range orders {
		assert.Equal(t, "alice", o.UserID)
	}
}

func TestOrderUseCase_GetMineHidesOtherShoppers(t *testing.T) {
	uc := NewOrderUseCase(seededOrders())
	ctx := context.Background()

	order, err := uc.GetMine(ctx, "alice", "o1")
	require.NoError(t, err)
	assert.Equal(t, 55.18, order.Total)

	_, err = uc.GetMine(ctx, "alice", "o2")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestOrderUseCase_ListByStatus(t *testing.T) {
	uc := NewOrderUseCase(seededOrders())
	ctx := context.Background()

	orders, total, err := uc.List(ctx, entity.OrderStatusCompleted, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, orders, 2)

	_, _, err = uc.List(ctx, "shipped", 1, 20)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	uc := NewOrderUseCase(seededOrders())
	ctx := context.Background()

	order, err := uc.UpdateStatus(ctx, "o1", UpdateOrderStatusRequest{Status: entity.OrderStatusProcessing})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)

	_, err = uc.UpdateStatus(ctx, "missing", UpdateOrderStatusRequest{Status: entity.OrderStatusCancelled})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
