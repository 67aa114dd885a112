package output

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/skuwatch/skuwatch/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
}

// ImportResult renders an import run outcome in the configured format
func ImportResult(result *dto.ImportResult, config Config) error {
	switch config.Format {
	case "text":
		printImportText(result)
		return nil
	case "json":
		return printJSON(result)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// RiskReports renders per-variant risk reports in the configured format
func RiskReports(reports []dto.RiskReport, config Config) error {
	switch config.Format {
	case "text":
		printRiskText(reports)
		return nil
	case "json":
		return printJSON(reports)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// SupplierStats renders per-supplier rollups in the configured format.
// Text output sorts by at-risk count descending; that ordering is purely
// presentational.
func SupplierStats(stats []dto.SupplierStats, config Config) error {
	switch config.Format {
	case "text":
		printStatsText(stats)
		return nil
	case "json":
		return printJSON(stats)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printImportText(result *dto.ImportResult) {
	fmt.Printf("📊 Import Run %s\n", result.RunID)
	fmt.Printf("=====================\n\n")
	fmt.Printf("Rows: %d   SKUs: %d\n", result.TotalRows, result.TotalSKUs)
	fmt.Printf("Committed: %d   Skipped: %d   Failed: %d\n\n",
		len(result.Success), len(result.Skipped), len(result.Failed))

	if len(result.Success) > 0 {
		fmt.Printf("✅ Committed:\n")
		for _, s := range result.Success {
			fmt.Printf("  %-20s variant=%s suppliers=%d\n", s.SKU, s.VariantID, s.SupplierCount)
		}
		fmt.Println()
	}

	if len(result.Skipped) > 0 {
		fmt.Printf("⏭️  Skipped:\n")
		for _, s := range result.Skipped {
			fmt.Printf("  %-20s %s\n", s.SKU, s.Reason)
		}
		fmt.Println()
	}

	if len(result.Failed) > 0 {
		fmt.Printf("❌ Failed:\n")
		for _, f := range result.Failed {
			fmt.Printf("  %-20s %s\n", f.SKU, f.Error)
		}
		fmt.Println()
	}
}

func printRiskText(reports []dto.RiskReport) {
	fmt.Printf("📦 Inventory Risk\n")
	fmt.Printf("=================\n\n")
	fmt.Printf("%-20s %-12s %-8s %-10s %-12s %-10s\n",
		"SKU", "Tier", "On Hand", "Days Left", "Reorder Pt", "Suggested")
	fmt.Printf("%-20s %-12s %-8s %-10s %-12s %-10s\n",
		"--------------------", "------------", "--------", "----------", "------------", "----------")

	for _, r := range reports {
		days := "∞"
		if r.DaysUntilStockout != nil {
			// Display truncates toward zero; the model keeps the fraction.
			days = fmt.Sprintf("%d", int(math.Trunc(*r.DaysUntilStockout)))
		}
		fmt.Printf("%-20s %-12s %-8d %-10s %-12.1f %-10.0f\n",
			r.SKU, r.RiskTier, r.OnHand, days, r.ReorderPoint, r.SuggestedOrderQuantity)
	}
	fmt.Println()
}

func printStatsText(stats []dto.SupplierStats) {
	sorted := make([]dto.SupplierStats, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AtRisk > sorted[j].AtRisk
	})

	fmt.Printf("🏭 Supplier Summary\n")
	fmt.Printf("===================\n\n")
	fmt.Printf("%-12s %-24s %-9s %-9s %-9s %-9s %-9s %-12s\n",
		"Supplier", "Name", "Variants", "Primary", "OOS", "Critical", "At Risk", "Value")
	fmt.Printf("%-12s %-24s %-9s %-9s %-9s %-9s %-9s %-12s\n",
		"------------", "------------------------", "---------", "---------", "---------", "---------", "---------", "------------")

	for _, s := range sorted {
		fmt.Printf("%-12s %-24s %-9d %-9d %-9d %-9d %-9d %-12s\n",
			s.SupplierID, s.SupplierName, s.TotalVariants, s.PrimaryVariants,
			s.OutOfStock, s.Critical, s.AtRisk, s.TotalValue.StringFixed(2))
	}
	fmt.Println()
}
