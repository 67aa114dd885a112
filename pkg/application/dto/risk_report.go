package dto

import (
	"time"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
)

// RiskReport is the JSON-facing risk picture for one variant, computed from
// its primary assignment. DaysUntilStockout is nil when the variant never
// depletes under the model (zero demand).
type RiskReport struct {
	SKU                    entities.SKU      `json:"sku"`
	ProductTitle           string            `json:"product_title"`
	SupplierName           string            `json:"supplier_name"`
	OnHand                 int               `json:"on_hand"`
	DailyDemand            float64           `json:"daily_demand"`
	Threshold              int               `json:"threshold"`
	LeadTimeDays           int               `json:"lead_time_days"`
	AnnualizedDemand       float64           `json:"annualized_demand"`
	DaysUntilStockout      *float64          `json:"days_until_stockout"`
	ProjectedStockoutDate  *time.Time        `json:"projected_stockout_date,omitempty"`
	ReorderPoint           float64           `json:"reorder_point"`
	SuggestedOrderQuantity float64           `json:"suggested_order_quantity"`
	RiskTier               entities.RiskTier `json:"risk_tier"`
}

// NewRiskReport flattens a RiskRecord and its display joins into the
// external report shape.
func NewRiskReport(r entities.RiskRecord, productTitle, supplierName string) RiskReport {
	report := RiskReport{
		SKU:                    r.SKU,
		ProductTitle:           productTitle,
		SupplierName:           supplierName,
		OnHand:                 r.OnHand,
		DailyDemand:            r.DailyDemand,
		Threshold:              r.Threshold,
		LeadTimeDays:           r.LeadTimeDays,
		AnnualizedDemand:       r.AnnualizedDemand,
		ProjectedStockoutDate:  r.ProjectedStockoutDate,
		ReorderPoint:           r.ReorderPoint,
		SuggestedOrderQuantity: r.SuggestedOrderQuantity,
		RiskTier:               r.Tier,
	}

	if !r.NeverDepletes() {
		days := r.DaysUntilStockout
		report.DaysUntilStockout = &days
	}

	return report
}
