package repositories

import (
	"context"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
)

// Assignment blobs live in the platform's generic key-value metadata store
// under a fixed namespace and key, owned by the variant.
const (
	AssignmentNamespace = "inventory"
	AssignmentKey       = "supplier_data"
)

// AssignmentStore is the engine's view of the external key-value metadata
// store: opaque JSON blobs keyed by owner entity, namespace and key.
// Last-write-wins semantics are assumed, not implemented here.
type AssignmentStore interface {
	Get(ctx context.Context, owner entities.VariantID, namespace, key string) ([]byte, error)
	Set(ctx context.Context, owner entities.VariantID, namespace, key string, value []byte) error
}
