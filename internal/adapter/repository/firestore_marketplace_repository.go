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
)

const marketplaceCollection = "marketplace_settings"

type firestoreMarketplaceRepository struct {
	client *firestore.Client
}

func NewFirestoreMarketplaceRepository(client *firestore.Client) repository.MarketplaceRepository {
	return &firestoreMarketplaceRepository{
		client: client,
	}
}

func (r *firestoreMarketplaceRepository) List(ctx context.Context) ([]*entity.MarketplaceSettings, error) {
	iter := r.client.Collection(marketplaceCollection).Documents(ctx)
	defer iter.Stop()

	settings := []*entity.MarketplaceSettings{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate marketplace settings", err)
		}

		var s entity.MarketplaceSettings
		if err := doc.DataTo(&s); err != nil {
			return nil, errors.Internal("Failed to parse marketplace settings", err)
		}
		s.ID = doc.Ref.ID
		settings = append(settings, &s)
	}

	return settings, nil
}

func (r *firestoreMarketplaceRepository) GetByID(ctx context.Context, id string) (*entity.MarketplaceSettings, error) {
	doc, err := r.client.Collection(marketplaceCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Marketplace", err)
		}
		return nil, errors.Internal("Failed to get marketplace settings", err)
	}

	var s entity.MarketplaceSettings
	if err := doc.DataTo(&s); err != nil {
		return nil, errors.Internal("Failed to parse marketplace settings", err)
	}
	s.ID = doc.Ref.ID

	return &s, nil
}

func (r *firestoreMarketplaceRepository) Upsert(ctx context.Context, settings *entity.MarketplaceSettings) error {
	settings.UpdatedAt = time.Now()

	_, err := r.client.Collection(marketplaceCollection).Doc(settings.ID).Set(ctx, settings)
	if err != nil {
		return errors.Internal("Failed to save marketplace settings", err)
	}
	return nil
}
