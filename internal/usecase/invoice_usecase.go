package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/pkg/errors"
)

const (
	invoiceDueAfter       = 30 * 24 * time.Hour
	invoiceCreateAttempts = 3
)

type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	currency    string
	now         func() time.Time
	newID       func() string
}

func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, currency string) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		currency:    currency,
		now:         time.Now,
		newID:       newInvoiceID,
	}
}

type CreateInvoiceRequest struct {
	Customer string  `json:"customer" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Type     string  `json:"type" validate:"omitempty,oneof=sale purchase"`
	OrderID  string  `json:"order_id"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=paid pending"`
}

// List returns invoices with overdue derived at read time. q matches the invoice
// number or customer, case-insensitively.
func (uc *InvoiceUseCase) List(ctx context.Context, q, invoiceType string) ([]*entity.Invoice, error) {
	if invoiceType != "" && invoiceType != entity.InvoiceTypeSale && invoiceType != entity.InvoiceTypePurchase {
		return nil, errors.BadRequest("Invalid invoice type", nil)
	}

	invoices, err := uc.invoiceRepo.List(ctx, invoiceType)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	term := strings.ToLower(strings.TrimSpace(q))
	result := make([]*entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if term != "" &&
			!strings.Contains(strings.ToLower(inv.ID), term) &&
			!strings.Contains(strings.ToLower(inv.Customer), term) {
			continue
		}
		inv.Status = inv.EffectiveStatus(now)
		result = append(result, inv)
	}
	return result, nil
}

func (uc *InvoiceUseCase) Create(ctx context.Context, req CreateInvoiceRequest) (*entity.Invoice, error) {
	invoiceType := req.Type
	if invoiceType == "" {
		invoiceType = entity.InvoiceTypePurchase
	}

	now := uc.now()
	invoice := &entity.Invoice{
		OrderID:  req.OrderID,
		Customer: strings.TrimSpace(req.Customer),
		Amount:   decimal.NewFromFloat(req.Amount).Round(2).InexactFloat64(),
		Currency: uc.currency,
		Status:   entity.InvoiceStatusPending,
		Type:     invoiceType,
		IssuedAt: now,
		DueAt:    now.Add(invoiceDueAfter),
	}
	if err := uc.insert(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// CreateForOrder issues the sale invoice for a freshly placed order.
func (uc *InvoiceUseCase) CreateForOrder(ctx context.Context, order *entity.Order) (*entity.Invoice, error) {
	customer := order.CustomerName
	if customer == "" {
		customer = order.CustomerEmail
	}

	now := uc.now()
	invoice := &entity.Invoice{
		OrderID:  order.ID,
		Customer: customer,
		Amount:   order.Total,
		Currency: order.Currency,
		Status:   entity.InvoiceStatusPending,
		Type:     entity.InvoiceTypeSale,
		IssuedAt: now,
		DueAt:    now.Add(invoiceDueAfter),
	}
	if err := uc.insert(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, req UpdateInvoiceStatusRequest) (*entity.Invoice, error) {
	if err := uc.invoiceRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}

	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	invoice.Status = invoice.EffectiveStatus(uc.now())
	return invoice, nil
}

// insert retries on invoice number collisions.
func (uc *InvoiceUseCase) insert(ctx context.Context, invoice *entity.Invoice) error {
	var err error
	for attempt := 0; attempt < invoiceCreateAttempts; attempt++ {
		invoice.ID = uc.newID()
		err = uc.invoiceRepo.Create(ctx, invoice)
		if err == nil || !errors.Is(err, "CONFLICT") {
			return err
		}
	}
	return err
}

func newInvoiceID() string {
	return "INV-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}
