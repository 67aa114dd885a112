package services

import (
	"context"
	"fmt"
	"time"

	"github.com/skuwatch/skuwatch/pkg/application/dto"
	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/domain/repositories"
	"github.com/skuwatch/skuwatch/pkg/domain/services"
)

// RiskService answers per-variant risk queries by joining the variant
// snapshot, its primary assignment and the supplier catalog. It never
// fails on missing or malformed persisted data; such variants read as
// zero-demand, zero-threshold.
type RiskService struct {
	catalog     repositories.SupplierCatalog
	variants    repositories.VariantIndex
	assignments *AssignmentService

	// Now is the clock used for stockout projection; overridable in tests
	Now func() time.Time
}

// NewRiskService creates a new risk service
func NewRiskService(
	catalog repositories.SupplierCatalog,
	variants repositories.VariantIndex,
	assignments *AssignmentService,
) *RiskService {
	return &RiskService{
		catalog:     catalog,
		variants:    variants,
		assignments: assignments,
		Now:         time.Now,
	}
}

// Report computes the risk picture for one SKU from its primary assignment
func (s *RiskService) Report(ctx context.Context, sku entities.SKU) (*dto.RiskReport, error) {
	variant, err := s.variants.GetVariant(sku)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve SKU %s: %w", sku, err)
	}

	report := s.reportVariant(ctx, variant)
	return &report, nil
}

// ReportAll computes risk for every variant in the index, in SKU order
func (s *RiskService) ReportAll(ctx context.Context) ([]dto.RiskReport, error) {
	variants, err := s.variants.GetAllVariants()
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}

	reports := make([]dto.RiskReport, 0, len(variants))
	for _, v := range variants {
		reports = append(reports, s.reportVariant(ctx, v))
	}
	return reports, nil
}

func (s *RiskService) reportVariant(ctx context.Context, variant *entities.VariantSnapshot) dto.RiskReport {
	list, err := s.assignments.Get(ctx, variant.SKU)
	if err != nil {
		list = nil
	}

	primary, _ := list.Primary()
	record := services.ComputeAssignmentRisk(variant, primary, s.Now())

	supplierName := ""
	if primary.SupplierID != "" {
		if supplier, err := s.catalog.GetSupplier(primary.SupplierID); err == nil {
			supplierName = supplier.Name
		}
	}

	return dto.NewRiskReport(record, variant.ProductTitle, supplierName)
}
