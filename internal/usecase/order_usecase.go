package usecase

import (
	"context"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/pkg/errors"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

func (uc *OrderUseCase) ListMine(ctx context.Context, uid string, page, limit int) ([]*entity.Order, int64, error) {
	offset := (page - 1) * limit
	return uc.orderRepo.ListByUser(ctx, uid, limit, offset)
}

// GetMine hides other shoppers' orders behind the same 404 as a missing one.
func (uc *OrderUseCase) GetMine(ctx context.Context, uid, id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != uid {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (uc *OrderUseCase) List(ctx context.Context, status string, page, limit int) ([]*entity.Order, int64, error) {
	if status != "" && !entity.IsValidOrderStatus(status) {
		return nil, 0, errors.BadRequest("Invalid order status", nil)
	}
	offset := (page - 1) * limit
	return uc.orderRepo.List(ctx, status, limit, offset)
}

func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, req UpdateOrderStatusRequest) (*entity.Order, error) {
	if !entity.IsValidOrderStatus(req.Status) {
		return nil, errors.BadRequest("Invalid order status", nil)
	}
	if err := uc.orderRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}
	return uc.orderRepo.GetByID(ctx, id)
}
