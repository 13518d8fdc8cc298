package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/pkg/errors"
)

type firestoreInvoiceRepository struct {
	client *firestore.Client
}

func NewFirestoreInvoiceRepository(client *firestore.Client) repository.InvoiceRepository {
	return &firestoreInvoiceRepository{
		client: client,
	}
}

func (r *firestoreInvoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	_, err := r.client.Collection("invoices").Doc(invoice.ID).Create(ctx, invoice)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.New("CONFLICT", "Invoice already exists", 409, err)
		}
		return errors.Internal("Failed to create invoice", err)
	}
	return nil
}

func (r *firestoreInvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	doc, err := r.client.Collection("invoices").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Invoice", err)
		}
		return nil, errors.Internal("Failed to get invoice", err)
	}

	var invoice entity.Invoice
	if err := doc.DataTo(&invoice); err != nil {
		return nil, errors.Internal("Failed to parse invoice data", err)
	}
	invoice.ID = doc.Ref.ID

	return &invoice, nil
}

func (r *firestoreInvoiceRepository) List(ctx context.Context, invoiceType string) ([]*entity.Invoice, error) {
	query := r.client.Collection("invoices").Query
	if invoiceType != "" {
		query = query.Where("type", "==", invoiceType)
	}
	query = query.OrderBy("issuedAt", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	invoices := []*entity.Invoice{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate invoices", err)
		}

		var invoice entity.Invoice
		if err := doc.DataTo(&invoice); err != nil {
			return nil, errors.Internal("Failed to parse invoice data", err)
		}
		invoice.ID = doc.Ref.ID
		invoices = append(invoices, &invoice)
	}

	return invoices, nil
}

func (r *firestoreInvoiceRepository) UpdateStatus(ctx context.Context, id, invoiceStatus string) error {
	_, err := r.client.Collection("invoices").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: invoiceStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Invoice", err)
		}
		return errors.Internal("Failed to update invoice status", err)
	}
	return nil
}
