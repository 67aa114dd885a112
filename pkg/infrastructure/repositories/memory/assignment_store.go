package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/domain/repositories"
)

// AssignmentStore is an in-memory stand-in for the platform's key-value
// metadata store. Entries are keyed by owner, namespace and key;
// last write wins.
type AssignmentStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewAssignmentStore creates a new in-memory assignment store
func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{
		entries: make(map[string][]byte),
	}
}

// Verify interface compliance
var _ repositories.AssignmentStore = (*AssignmentStore)(nil)

func entryKey(owner entities.VariantID, namespace, key string) string {
	return fmt.Sprintf("%s/%s/%s", owner, namespace, key)
}

// Get returns the blob stored for one owner/namespace/key
func (s *AssignmentStore) Get(ctx context.Context, owner entities.VariantID, namespace, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[entryKey(owner, namespace, key)]
	if !ok {
		return nil, fmt.Errorf("entry %s/%s for owner %s: %w", namespace, key, owner, repositories.ErrNotFound)
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a blob for one owner/namespace/key, replacing any prior value
func (s *AssignmentStore) Set(ctx context.Context, owner entities.VariantID, namespace, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[entryKey(owner, namespace, key)] = stored
	return nil
}
