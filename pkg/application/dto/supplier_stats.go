package dto

import (
	"github.com/shopspring/decimal"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
)

// SupplierStats is the fleet-level rollup for one supplier. Ordering of a
// stats slice is a presentation concern; the named fields support any sort.
type SupplierStats struct {
	SupplierID      entities.SupplierID `json:"supplier_id"`
	SupplierName    string              `json:"supplier_name"`
	TotalVariants   int                 `json:"total_variants"`
	PrimaryVariants int                 `json:"primary_variants"`
	OutOfStock      int                 `json:"out_of_stock"`
	Critical        int                 `json:"critical"`
	AtRisk          int                 `json:"at_risk"`
	NeedsReorder    int                 `json:"needs_reorder"`
	TotalValue      decimal.Decimal     `json:"total_value"`
}
