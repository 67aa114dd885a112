package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/domain/repositories"
)

// AssignmentStore persists assignment blobs in redis, keyed by
// owner:namespace:key. It mirrors the platform KV contract: opaque values,
// last write wins.
type AssignmentStore struct {
	client *redis.Client
}

// NewAssignmentStore creates an assignment store backed by the given client
func NewAssignmentStore(client *redis.Client) *AssignmentStore {
	return &AssignmentStore{client: client}
}

// Verify interface compliance
var _ repositories.AssignmentStore = (*AssignmentStore)(nil)

func storeKey(owner entities.VariantID, namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", owner, namespace, key)
}

// Get returns the blob stored for one owner/namespace/key
func (s *AssignmentStore) Get(ctx context.Context, owner entities.VariantID, namespace, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, storeKey(owner, namespace, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("entry %s/%s for owner %s: %w", namespace, key, owner, repositories.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read entry for owner %s: %w", owner, err)
	}
	return value, nil
}

// Set stores a blob for one owner/namespace/key, replacing any prior value
func (s *AssignmentStore) Set(ctx context.Context, owner entities.VariantID, namespace, key string, value []byte) error {
	if err := s.client.Set(ctx, storeKey(owner, namespace, key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write entry for owner %s: %w", owner, err)
	}
	return nil
}
