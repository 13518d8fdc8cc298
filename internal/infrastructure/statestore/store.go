package statestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
)

// ErrNotFound is returned by Get when nothing has been stored under the key.
var ErrNotFound = errors.New("statestore: key not found")

const (
	BackendSQLite    = "sqlite"
	BackendFile      = "file"
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
)

// BlobStore is a synchronous string-keyed blob store. Put replaces the whole value.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Open builds the backend named by backend. path is the database file for
// sqlite and the directory for file; client is only used by firestore.
func Open(backend, path string, client *firestore.Client) (BlobStore, error) {
	switch backend {
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendFile:
		return NewFileStore(path)
	case BackendFirestore:
		if client == nil {
			return nil, fmt.Errorf("statestore: firestore backend requires a client")
		}
		return NewFirestoreStore(client), nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("statestore: unknown backend %q", backend)
	}
}
