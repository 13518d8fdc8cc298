package repository

import (
	"context"

	"laptek/internal/domain/entity"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// List returns invoices newest first, optionally restricted to one type.
	List(ctx context.Context, invoiceType string) ([]*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
