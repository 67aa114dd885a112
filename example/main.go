package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/skuwatch/skuwatch/pkg/application/services"
	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/infrastructure/feeds"
	"github.com/skuwatch/skuwatch/pkg/infrastructure/repositories/memory"
)

const supplierFeed = `SKU,SupplierID,MPN,IsPrimary,LeadTime,Threshold,DailyDemand,LastOrderDate,LastOrderCPU,LastOrderQty,Notes
DESK-ORG-01,SUP-ACME,ACM-4410,y,14,10,2,2026-07-15,12.50,100,restock before holidays
DESK-ORG-01,SUP-GLOBEX,GBX-991,,21,10,2,2026-06-02,8.00,250,
LAMP-BRASS-02,SUP-ACME,ACM-7730,y,10,20,5,2026-08-01,2.00,500,
COASTER-SET-03,SUP-GLOBEX,GBX-350,y,7,0,1,2026-05-20,4.25,60,`

func main() {
	ctx := context.Background()

	// Set up in-memory repositories
	catalog := memory.NewSupplierCatalog()
	index := memory.NewVariantIndex()
	store := memory.NewAssignmentStore()

	setupShop(catalog, index)

	// Import a supplier feed
	importer := services.NewImportService(catalog, index, store, nil, nil)

	fmt.Println("📥 Importing supplier feed...")
	result, err := importer.Run(ctx, strings.NewReader(supplierFeed), feeds.FormatCSV)
	if err != nil {
		fmt.Printf("❌ Import failed: %v\n", err)
		return
	}
	fmt.Printf("  Committed: %d | Skipped: %d | Failed: %d (of %d SKUs, %d rows)\n",
		len(result.Success), len(result.Skipped), len(result.Failed),
		result.TotalSKUs, result.TotalRows)
	fmt.Println()

	// Compute per-SKU risk from the imported assignments
	assignments := services.NewAssignmentService(index, store)
	risk := services.NewRiskService(catalog, index, assignments)

	reports, err := risk.ReportAll(ctx)
	if err != nil {
		fmt.Printf("❌ Risk calculation failed: %v\n", err)
		return
	}

	fmt.Println("📊 Stockout Risk:")
	for _, report := range reports {
		days := "∞"
		if report.DaysUntilStockout != nil {
			days = fmt.Sprintf("%.1f days", *report.DaysUntilStockout)
		}
		fmt.Printf("  %s: %s (%s on hand: %d, supplier: %s)\n",
			report.SKU, report.RiskTier, days, report.OnHand, report.SupplierName)
		if report.SuggestedOrderQuantity > 0 {
			fmt.Printf("    ⚠️  Suggested order: %.0f units\n", report.SuggestedOrderQuantity)
		}
	}
	fmt.Println()

	// Aggregate per-supplier stats
	snapshots, err := index.GetAllVariants()
	if err != nil {
		fmt.Printf("❌ Variant listing failed: %v\n", err)
		return
	}
	bySKU, err := assignments.AssignmentsBySKU(ctx)
	if err != nil {
		fmt.Printf("❌ Assignment listing failed: %v\n", err)
		return
	}

	stats, err := services.NewStatsService().Aggregate(snapshots, bySKU, catalog)
	if err != nil {
		fmt.Printf("❌ Stats aggregation failed: %v\n", err)
		return
	}

	fmt.Println("🏭 Supplier Stats:")
	for _, s := range stats {
		fmt.Printf("  %s: %d variants (%d primary) | at risk: %d | reorder: %d | value: %s\n",
			s.SupplierName, s.TotalVariants, s.PrimaryVariants,
			s.AtRisk, s.NeedsReorder, s.TotalValue.StringFixed(2))
	}
	fmt.Println()

	fmt.Println("✅ Analysis complete!")
}

func setupShop(catalog *memory.SupplierCatalog, index *memory.VariantIndex) {
	suppliers := []*entities.SupplierRecord{
		{SupplierID: "SUP-ACME", Name: "Acme Components", ContactEmail: "orders@acme.example"},
		{SupplierID: "SUP-GLOBEX", Name: "Globex Wholesale", ContactEmail: "sales@globex.example"},
	}
	for _, s := range suppliers {
		if err := catalog.SaveSupplier(s); err != nil {
			panic(err)
		}
	}

	variants := []*entities.VariantSnapshot{
		{SKU: "DESK-ORG-01", VariantID: "gid://shop/Variant/1001", ProductTitle: "Walnut Desk Organizer", OnHandQuantity: 5},
		{SKU: "LAMP-BRASS-02", VariantID: "gid://shop/Variant/1002", ProductTitle: "Brass Table Lamp", OnHandQuantity: 200},
		{SKU: "COASTER-SET-03", VariantID: "gid://shop/Variant/1003", ProductTitle: "Marble Coaster Set", OnHandQuantity: 0},
	}
	if err := index.LoadVariants(variants); err != nil {
		panic(err)
	}
}
