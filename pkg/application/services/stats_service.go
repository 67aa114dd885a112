package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skuwatch/skuwatch/pkg/application/dto"
	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/domain/repositories"
	"github.com/skuwatch/skuwatch/pkg/domain/services"
)

// UnknownSupplierPolicy governs assignments whose supplier id is missing
// from the catalog.
type UnknownSupplierPolicy int

const (
	// DropUnknownSuppliers ignores such assignments entirely
	DropUnknownSuppliers UnknownSupplierPolicy = iota
	// BucketUnknownSuppliers accumulates them under a synthetic record
	BucketUnknownSuppliers
)

// UnknownSupplierID keys the synthetic bucket under BucketUnknownSuppliers
const UnknownSupplierID = entities.SupplierID("__unknown__")

// StatsService rolls risk records up across all variants, grouped by
// supplier. Every assignment contributes, not just the primary one.
type StatsService struct {
	policy UnknownSupplierPolicy

	// Now is the clock used for risk computation; overridable in tests
	Now func() time.Time
}

// NewStatsService creates a stats service that drops unknown supplier ids
func NewStatsService() *StatsService {
	return NewStatsServiceWithPolicy(DropUnknownSuppliers)
}

// NewStatsServiceWithPolicy creates a stats service with an explicit
// unknown-supplier policy
func NewStatsServiceWithPolicy(policy UnknownSupplierPolicy) *StatsService {
	return &StatsService{
		policy: policy,
		Now:    time.Now,
	}
}

// Aggregate produces one stats row per catalog supplier, in catalog order.
// Suppliers without assignments appear with zeroed counters. Under the
// bucket policy a synthetic "Unknown supplier" row is appended last when
// any assignment referenced an uncataloged supplier.
func (s *StatsService) Aggregate(
	snapshots []*entities.VariantSnapshot,
	assignmentsBySKU map[entities.SKU]entities.AssignmentList,
	catalog repositories.SupplierCatalog,
) ([]dto.SupplierStats, error) {
	suppliers, err := catalog.GetAllSuppliers()
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	order := make([]entities.SupplierID, 0, len(suppliers)+1)
	accs := make(map[entities.SupplierID]*dto.SupplierStats, len(suppliers)+1)
	for _, supplier := range suppliers {
		order = append(order, supplier.SupplierID)
		accs[supplier.SupplierID] = &dto.SupplierStats{
			SupplierID:   supplier.SupplierID,
			SupplierName: supplier.Name,
			TotalValue:   decimal.Zero,
		}
	}

	asOf := s.Now()
	bucketUsed := false

	for _, snapshot := range snapshots {
		for _, a := range assignmentsBySKU[snapshot.SKU] {
			acc, ok := accs[a.SupplierID]
			if !ok {
				if s.policy == DropUnknownSuppliers {
					continue
				}
				acc = accs[UnknownSupplierID]
				if acc == nil {
					acc = &dto.SupplierStats{
						SupplierID:   UnknownSupplierID,
						SupplierName: "Unknown supplier",
						TotalValue:   decimal.Zero,
					}
					accs[UnknownSupplierID] = acc
				}
				bucketUsed = true
			}

			acc.TotalVariants++
			if a.IsPrimary {
				acc.PrimaryVariants++
			}

			record := services.ComputeAssignmentRisk(snapshot, a, asOf)
			switch record.Tier {
			case entities.TierOutOfStock:
				acc.OutOfStock++
			case entities.TierCritical:
				acc.Critical++
			}
			if record.Tier != entities.TierLow {
				acc.AtRisk++
			}
			if record.NeedsReorder() {
				acc.NeedsReorder++
			}

			value := decimal.NewFromInt(int64(snapshot.OnHandQuantity)).Mul(a.LastOrderUnitCost)
			acc.TotalValue = acc.TotalValue.Add(value)
		}
	}

	if bucketUsed {
		order = append(order, UnknownSupplierID)
	}

	stats := make([]dto.SupplierStats, 0, len(order))
	for _, id := range order {
		stats = append(stats, *accs[id])
	}
	return stats, nil
}
