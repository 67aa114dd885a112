package entities

import (
	"math"
	"time"
)

// RiskTier is a coarse urgency classification derived from days until
// stockout. Tiers are totally ordered; a higher value is more urgent.
type RiskTier int

const (
	TierLow RiskTier = iota
	TierAttention
	TierWarning
	TierCritical
	TierOutOfStock
)

// String method for RiskTier enum
func (t RiskTier) String() string {
	switch t {
	case TierLow:
		return "LOW"
	case TierAttention:
		return "ATTENTION"
	case TierWarning:
		return "WARNING"
	case TierCritical:
		return "CRITICAL"
	case TierOutOfStock:
		return "OUT_OF_STOCK"
	default:
		return "Unknown"
	}
}

// MarshalText renders the tier name in JSON and text output
func (t RiskTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// RiskRecord is the derived risk picture for one variant under one
// assignment's parameters. It is recomputed on demand and never persisted;
// it has no identity of its own.
type RiskRecord struct {
	SKU                    SKU
	OnHand                 int
	DailyDemand            float64
	Threshold              int
	LeadTimeDays           int
	AnnualizedDemand       float64
	DaysUntilStockout      float64 // +Inf when demand is zero
	ProjectedStockoutDate  *time.Time
	ReorderPoint           float64
	SuggestedOrderQuantity float64
	Tier                   RiskTier
}

// NeverDepletes reports whether the variant cannot stock out under this
// model (zero daily demand).
func (r RiskRecord) NeverDepletes() bool {
	return math.IsInf(r.DaysUntilStockout, 1)
}

// NeedsReorder reports whether on-hand stock is at or under the reorder
// point.
func (r RiskRecord) NeedsReorder() bool {
	return float64(r.OnHand) <= r.ReorderPoint
}
