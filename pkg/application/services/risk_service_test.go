package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/domain/repositories"
	infratesting "github.com/skuwatch/skuwatch/pkg/infrastructure/testing"
)

func TestRiskService_Report_UsesPrimaryAssignment(t *testing.T) {
	catalog, index, store := infratesting.BuildShopFixtures()
	assignments := NewAssignmentService(index, store)
	svc := NewRiskService(catalog, index, assignments)
	svc.Now = fixedClock
	ctx := context.Background()

	err := assignments.Put(ctx, "SKU-A", entities.AssignmentList{
		{SupplierID: "SUP-2", DailyDemand: 9, ReorderThreshold: 1, LeadTimeDays: 30},
		{SupplierID: "SUP-1", DailyDemand: 2, ReorderThreshold: 10, LeadTimeDays: 14, IsPrimary: true},
	})
	require.NoError(t, err)

	report, err := svc.Report(ctx, "SKU-A")
	require.NoError(t, err)

	// SKU-A has 5 on hand; the primary's parameters drive the numbers.
	assert.Equal(t, "Acme Components", report.SupplierName)
	assert.Equal(t, "Walnut Desk Organizer", report.ProductTitle)
	assert.Equal(t, 5, report.OnHand)
	assert.Equal(t, 38.0, report.ReorderPoint)
	assert.Equal(t, 47.0, report.SuggestedOrderQuantity)
	require.NotNil(t, report.DaysUntilStockout)
	assert.Equal(t, 0.0, *report.DaysUntilStockout)
	assert.Equal(t, entities.TierCritical, report.RiskTier)
}

func TestRiskService_Report_NoPersistedDataReadsAsZero(t *testing.T) {
	catalog, index, store := infratesting.BuildShopFixtures()
	svc := NewRiskService(catalog, index, NewAssignmentService(index, store))
	svc.Now = fixedClock

	report, err := svc.Report(context.Background(), "SKU-B")
	require.NoError(t, err)

	assert.Equal(t, "", report.SupplierName)
	assert.Equal(t, 0.0, report.DailyDemand)
	assert.Nil(t, report.DaysUntilStockout, "zero demand reads as never depleting")
	assert.Equal(t, entities.TierLow, report.RiskTier)
}

func TestRiskService_Report_UnknownSKU(t *testing.T) {
	catalog, index, store := infratesting.BuildShopFixtures()
	svc := NewRiskService(catalog, index, NewAssignmentService(index, store))

	_, err := svc.Report(context.Background(), "SKU-NOPE")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRiskService_ReportAll_SKUOrder(t *testing.T) {
	catalog, index, store := infratesting.BuildShopFixtures()
	assignments := NewAssignmentService(index, store)
	svc := NewRiskService(catalog, index, assignments)
	svc.Now = fixedClock
	ctx := context.Background()

	_, err := assignments.AddOrUpdate(ctx, "SKU-C", infratesting.PrimaryAssignment("SUP-2"), -1)
	require.NoError(t, err)

	reports, err := svc.ReportAll(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, entities.SKU("SKU-A"), reports[0].SKU)
	assert.Equal(t, entities.SKU("SKU-B"), reports[1].SKU)
	assert.Equal(t, entities.SKU("SKU-C"), reports[2].SKU)

	// SKU-C is depleted with demand on its primary assignment.
	assert.Equal(t, entities.TierOutOfStock, reports[2].RiskTier)
	assert.Equal(t, "Globex Wholesale", reports[2].SupplierName)
}
