package events

import (
	"github.com/skuwatch/skuwatch/pkg/domain/entities"
)

const (
	ImportRunStartedEvent  = "import.run.started"
	ImportRunFinishedEvent = "import.run.finished"

	ImportGroupCommittedEvent = "import.group.committed"
	ImportGroupSkippedEvent   = "import.group.skipped"
	ImportGroupFailedEvent    = "import.group.failed"
)

type ImportRunStarted struct {
	RunID     string `json:"run_id"`
	TotalRows int    `json:"total_rows"`
	TotalSKUs int    `json:"total_skus"`
}

type ImportRunFinished struct {
	RunID     string `json:"run_id"`
	Committed int    `json:"committed"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}

type ImportGroupCommitted struct {
	SKU           entities.SKU       `json:"sku"`
	VariantID     entities.VariantID `json:"variant_id"`
	SupplierCount int                `json:"supplier_count"`
}

type ImportGroupSkipped struct {
	SKU    entities.SKU `json:"sku"`
	Reason string       `json:"reason"`
}

type ImportGroupFailed struct {
	SKU   entities.SKU `json:"sku"`
	Error string       `json:"error"`
}
