package memory

import (
	"fmt"
	"sort"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/domain/repositories"
)

// VariantIndex provides an in-memory SKU index over variant snapshots
type VariantIndex struct {
	variants map[entities.SKU]entities.VariantSnapshot
}

// NewVariantIndex creates a new in-memory variant index
func NewVariantIndex() *VariantIndex {
	return &VariantIndex{
		variants: make(map[entities.SKU]entities.VariantSnapshot),
	}
}

// Verify interface compliance
var _ repositories.VariantIndex = (*VariantIndex)(nil)

// LoadVariants loads variant snapshots into the index
func (x *VariantIndex) LoadVariants(variants []*entities.VariantSnapshot) error {
	for _, v := range variants {
		if v == nil {
			return fmt.Errorf("variant cannot be nil")
		}
		if v.SKU == "" {
			return fmt.Errorf("variant SKU cannot be empty")
		}
		x.variants[v.SKU] = *v
	}
	return nil
}

// GetVariant returns the snapshot for one SKU
func (x *VariantIndex) GetVariant(sku entities.SKU) (*entities.VariantSnapshot, error) {
	v, ok := x.variants[sku]
	if !ok {
		return nil, fmt.Errorf("variant %s: %w", sku, repositories.ErrNotFound)
	}
	return &v, nil
}

// GetAllVariants returns all snapshots sorted by SKU
func (x *VariantIndex) GetAllVariants() ([]*entities.VariantSnapshot, error) {
	variants := make([]*entities.VariantSnapshot, 0, len(x.variants))
	for sku := range x.variants {
		v := x.variants[sku]
		variants = append(variants, &v)
	}
	sort.Slice(variants, func(i, j int) bool {
		return variants[i].SKU < variants[j].SKU
	})
	return variants, nil
}
