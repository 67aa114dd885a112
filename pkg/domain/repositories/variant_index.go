package repositories

import "github.com/skuwatch/skuwatch/pkg/domain/entities"

// VariantIndex maps SKUs to variant identity and on-hand quantity, read
// from the hosted platform.
type VariantIndex interface {
	GetVariant(sku entities.SKU) (*entities.VariantSnapshot, error)
	GetAllVariants() ([]*entities.VariantSnapshot, error)
	LoadVariants(variants []*entities.VariantSnapshot) error
}
