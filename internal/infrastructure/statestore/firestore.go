package statestore

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const stateCollection = "client_state"

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

type stateDocument struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func (s *FirestoreStore) Get(ctx context.Context, key string) ([]byte, error) {
	doc, err := s.client.Collection(stateCollection).Doc(docID(key)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var state stateDocument
	if err := doc.DataTo(&state); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return []byte(state.Value), nil
}

func (s *FirestoreStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.client.Collection(stateCollection).Doc(docID(key)).Set(ctx, stateDocument{
		Value:     string(value),
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; the client is shared with the repositories.
func (s *FirestoreStore) Close() error {
	return nil
}

// Document ids may not contain '/'.
func docID(key string) string {
	return url.PathEscape(key)
}
