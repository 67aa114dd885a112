package services

import (
	"math"
	"time"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
)

// SafetyStockDays is the fixed buffer added on top of lead-time coverage
// when suggesting an order quantity.
const SafetyStockDays = 7

// Risk tier boundaries in days until stockout.
const (
	criticalDays  = 7
	warningDays   = 14
	attentionDays = 30
)

// ComputeRisk derives the full risk picture for one variant from its on-hand
// quantity and the ordering parameters of one assignment. It is pure: inputs
// are clamped to their floor rather than rejected, and there are no error
// conditions.
func ComputeRisk(onHand int, dailyDemand float64, threshold, leadTimeDays int, asOf time.Time) entities.RiskRecord {
	dailyDemand = clampFloat(dailyDemand)
	threshold = clampInt(threshold)
	leadTimeDays = clampInt(leadTimeDays)

	r := entities.RiskRecord{
		OnHand:           onHand,
		DailyDemand:      dailyDemand,
		Threshold:        threshold,
		LeadTimeDays:     leadTimeDays,
		AnnualizedDemand: dailyDemand * 365,
		ReorderPoint:     float64(threshold) + dailyDemand*float64(leadTimeDays),
	}

	suggested := dailyDemand*float64(leadTimeDays+SafetyStockDays) + float64(threshold) - float64(onHand)
	r.SuggestedOrderQuantity = math.Max(0, suggested)

	if dailyDemand == 0 {
		r.DaysUntilStockout = math.Inf(1)
		r.Tier = entities.TierLow
		return r
	}

	if onHand <= threshold {
		r.DaysUntilStockout = 0
	} else {
		// Fractional days are retained; display truncation is the caller's
		// concern.
		r.DaysUntilStockout = float64(onHand-threshold) / dailyDemand
	}

	stockout := asOf.Add(time.Duration(r.DaysUntilStockout * float64(24*time.Hour)))
	r.ProjectedStockoutDate = &stockout

	r.Tier = classifyTier(onHand, r.DaysUntilStockout)
	return r
}

// ComputeAssignmentRisk computes risk for a variant snapshot under one
// assignment's parameters.
func ComputeAssignmentRisk(v *entities.VariantSnapshot, a entities.SupplierAssignment, asOf time.Time) entities.RiskRecord {
	r := ComputeRisk(v.OnHandQuantity, a.DailyDemand, a.ReorderThreshold, a.LeadTimeDays, asOf)
	r.SKU = v.SKU
	return r
}

// classifyTier maps days-until-stockout to the canonical tier table.
// Depleted stock outranks everything; at-or-under-threshold lands in
// CRITICAL via the zero-days bucket.
func classifyTier(onHand int, days float64) entities.RiskTier {
	switch {
	case onHand <= 0:
		return entities.TierOutOfStock
	case days <= criticalDays:
		return entities.TierCritical
	case days <= warningDays:
		return entities.TierWarning
	case days <= attentionDays:
		return entities.TierAttention
	default:
		return entities.TierLow
	}
}

func clampFloat(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
