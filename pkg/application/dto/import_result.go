package dto

import "github.com/skuwatch/skuwatch/pkg/domain/entities"

// ImportSuccess records one SKU group whose assignment list was committed.
type ImportSuccess struct {
	SKU           entities.SKU       `json:"sku"`
	VariantID     entities.VariantID `json:"variantId"`
	SupplierCount int                `json:"supplierCount"`
}

// ImportSkip records one SKU group dropped by a local precondition
// (unknown SKU or unknown supplier ids). Skips are not retried.
type ImportSkip struct {
	SKU    entities.SKU `json:"sku"`
	Reason string       `json:"reason"`
}

// ImportFailure records one SKU group whose commit failed at the external
// store after retries. Distinct from a skip: the group was valid locally.
type ImportFailure struct {
	SKU   entities.SKU `json:"sku"`
	Error string       `json:"error"`
}

// ImportResult is the full outcome of one import run. It is a value built
// up and returned by the reconciler; there is no shared mutable state.
type ImportResult struct {
	RunID     string          `json:"runId"`
	Success   []ImportSuccess `json:"success"`
	Skipped   []ImportSkip    `json:"skipped"`
	Failed    []ImportFailure `json:"failed"`
	TotalSKUs int             `json:"totalSKUs"`
	TotalRows int             `json:"totalRows"`
}
