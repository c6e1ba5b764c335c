// Package kvstore provides the durable on-device key-value store backing
// the local replica.
package kvstore

import "context"

//go:generate mockgen -source=kvstore.go -destination=../mocks/kvstore/mock_store.go -package=mock_kvstore Store

// Store is a flat key-value map with prefix enumeration. A missing key is
// not an error: Get returns (nil, nil).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
