package repository

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"laptek/internal/domain/repository"
	"laptek/internal/infrastructure/statestore"
)

// jsonStateRepository stores one state value as a JSON blob under a fixed key.
type jsonStateRepository[S any] struct {
	store statestore.BlobStore
	key   string
}

func NewJSONStateRepository[S any](store statestore.BlobStore, key string) repository.StateRepository[S] {
	return &jsonStateRepository[S]{store: store, key: key}
}

// NewJSONStateRepositoryFactory binds the JSON adapter to one blob store.
func NewJSONStateRepositoryFactory[S any](store statestore.BlobStore) repository.StateRepositoryFactory[S] {
	return func(key string) repository.StateRepository[S] {
		return NewJSONStateRepository[S](store, key)
	}
}

func (r *jsonStateRepository[S]) Load(ctx context.Context) (S, error) {
	var state S

	blob, err := r.store.Get(ctx, r.key)
	if stderrors.Is(err, statestore.ErrNotFound) {
		return state, nil
	}
	if err != nil {
		return state, err
	}

	if err := json.Unmarshal(blob, &state); err != nil {
		return state, fmt.Errorf("failed to decode %s: %w", r.key, err)
	}
	return state, nil
}

func (r *jsonStateRepository[S]) Save(ctx context.Context, state S) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key, err)
	}
	return r.store.Put(ctx, r.key, blob)
}
