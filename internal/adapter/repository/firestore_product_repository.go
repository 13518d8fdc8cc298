package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/pkg/errors"
	"laptek/pkg/logger"
)

const productsCollection = "products"

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection(productsCollection).NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	return decodeProduct(doc)
}

// List with a NamePrefix is a range scan on name up to prefix+"\uf8ff".
func (r *firestoreProductRepository) List(ctx context.Context, q repository.ProductQuery) ([]*entity.Product, error) {
	query := r.client.Collection(productsCollection).Query

	if q.Status != "" {
		query = query.Where("status", "==", q.Status)
	}
	if q.NamePrefix != "" {
		query = query.OrderBy("name", firestore.Asc).
			StartAt(q.NamePrefix).
			EndAt(q.NamePrefix + "\uf8ff")
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	return collectProducts(query.Documents(ctx))
}

func (r *firestoreProductRepository) Watch(ctx context.Context) (<-chan entity.ProductEvent, error) {
	events := make(chan entity.ProductEvent)
	snapshots := r.client.Collection(productsCollection).Snapshots(ctx)

	go func() {
		defer close(events)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if ctx.Err() == nil && status.Code(err) != codes.Canceled {
					logger.Error("Product snapshot listener stopped: %v", err)
				}
				return
			}

			for _, change := range snap.Changes {
				product, err := decodeProduct(change.Doc)
				if err != nil {
					logger.Warn("Skipping product change %s: %v", change.Doc.Ref.ID, err)
					continue
				}

				event := entity.ProductEvent{Type: changeKind(change.Kind), Product: product}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

func changeKind(kind firestore.DocumentChangeKind) entity.ProductEventType {
	switch kind {
	case firestore.DocumentAdded:
		return entity.ProductAdded
	case firestore.DocumentRemoved:
		return entity.ProductRemoved
	default:
		return entity.ProductModified
	}
}

func collectProducts(iter *firestore.DocumentIterator) ([]*entity.Product, error) {
	defer iter.Stop()

	products := []*entity.Product{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		product, err := decodeProduct(doc)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// Seeded documents carry no id field, so the document id is authoritative.
func decodeProduct(doc *firestore.DocumentSnapshot) (*entity.Product, error) {
	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}
	product.ID = doc.Ref.ID
	return &product, nil
}
