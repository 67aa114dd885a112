package testing

import (
	"github.com/shopspring/decimal"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/infrastructure/repositories/memory"
)

// BuildShopFixtures builds the small storefront scenario shared by the
// application-layer tests: three suppliers and three variants in different
// stock positions.
func BuildShopFixtures() (*memory.SupplierCatalog, *memory.VariantIndex, *memory.AssignmentStore) {
	catalog := memory.NewSupplierCatalog()
	index := memory.NewVariantIndex()
	store := memory.NewAssignmentStore()

	suppliers := []*entities.SupplierRecord{
		{SupplierID: "SUP-1", Name: "Acme Components", ContactEmail: "orders@acme.test", City: "Portland", Country: "US"},
		{SupplierID: "SUP-2", Name: "Globex Wholesale", ContactEmail: "sales@globex.test", City: "Rotterdam", Country: "NL"},
		{SupplierID: "SUP-3", Name: "Initech Supply", City: "Austin", Country: "US"},
	}

	for _, supplier := range suppliers {
		if err := catalog.SaveSupplier(supplier); err != nil {
			panic(err)
		}
	}

	variants := []*entities.VariantSnapshot{
		{SKU: "SKU-A", VariantID: "gid-variant-1", ProductTitle: "Walnut Desk Organizer", OnHandQuantity: 5},
		{SKU: "SKU-B", VariantID: "gid-variant-2", ProductTitle: "Brass Pen Holder", OnHandQuantity: 200},
		{SKU: "SKU-C", VariantID: "gid-variant-3", ProductTitle: "Felt Drawer Liner", OnHandQuantity: 0},
	}

	if err := index.LoadVariants(variants); err != nil {
		panic(err)
	}

	return catalog, index, store
}

// PrimaryAssignment builds a primary assignment with sensible defaults
func PrimaryAssignment(supplierID entities.SupplierID) entities.SupplierAssignment {
	return entities.SupplierAssignment{
		SupplierID:        supplierID,
		LeadTimeDays:      14,
		ReorderThreshold:  10,
		DailyDemand:       2,
		LastOrderUnitCost: decimal.RequireFromString("12.50"),
		LastOrderQuantity: 100,
		IsPrimary:         true,
	}
}
