package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/domain/repositories"
)

// AssignmentService is the operator-facing edit surface over a variant's
// assignment list. Every read passes through the blob upconversion, every
// write persists the full normalized list.
type AssignmentService struct {
	variants repositories.VariantIndex
	store    repositories.AssignmentStore
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(variants repositories.VariantIndex, store repositories.AssignmentStore) *AssignmentService {
	return &AssignmentService{
		variants: variants,
		store:    store,
	}
}

// Get returns the persisted assignment list for a SKU. A missing or
// undecodable blob reads as an empty list, never an error.
func (s *AssignmentService) Get(ctx context.Context, sku entities.SKU) (entities.AssignmentList, error) {
	variant, err := s.variants.GetVariant(sku)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve SKU %s: %w", sku, err)
	}

	return s.load(ctx, variant.VariantID), nil
}

// Put persists a full assignment list for a SKU, normalizing it first
func (s *AssignmentService) Put(ctx context.Context, sku entities.SKU, list entities.AssignmentList) error {
	variant, err := s.variants.GetVariant(sku)
	if err != nil {
		return fmt.Errorf("failed to resolve SKU %s: %w", sku, err)
	}

	return s.write(ctx, variant.VariantID, list.Normalize())
}

// AddOrUpdate applies one assignment edit to a SKU's list and persists the
// result. A negative index appends.
func (s *AssignmentService) AddOrUpdate(ctx context.Context, sku entities.SKU, a entities.SupplierAssignment, index int) (entities.AssignmentList, error) {
	variant, err := s.variants.GetVariant(sku)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve SKU %s: %w", sku, err)
	}

	list := s.load(ctx, variant.VariantID).AddOrUpdate(a, index)
	if err := s.write(ctx, variant.VariantID, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Remove deletes one assignment from a SKU's list and persists the result
func (s *AssignmentService) Remove(ctx context.Context, sku entities.SKU, index int) (entities.AssignmentList, error) {
	variant, err := s.variants.GetVariant(sku)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve SKU %s: %w", sku, err)
	}

	list := s.load(ctx, variant.VariantID).Remove(index)
	if err := s.write(ctx, variant.VariantID, list); err != nil {
		return nil, err
	}
	return list, nil
}

// AssignmentsBySKU reads and upconverts the persisted list for every variant
// in the index. SKUs without persisted data are absent from the map.
func (s *AssignmentService) AssignmentsBySKU(ctx context.Context) (map[entities.SKU]entities.AssignmentList, error) {
	variants, err := s.variants.GetAllVariants()
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}

	bySKU := make(map[entities.SKU]entities.AssignmentList, len(variants))
	for _, v := range variants {
		if list := s.load(ctx, v.VariantID); len(list) > 0 {
			bySKU[v.SKU] = list
		}
	}
	return bySKU, nil
}

// load reads a variant's blob and upconverts it. Missing entries and
// malformed blobs read as empty lists.
func (s *AssignmentService) load(ctx context.Context, owner entities.VariantID) entities.AssignmentList {
	raw, err := s.store.Get(ctx, owner, repositories.AssignmentNamespace, repositories.AssignmentKey)
	if err != nil {
		return nil
	}

	list, err := entities.DecodeAssignmentBlob(raw)
	if err != nil {
		return nil
	}
	return list
}

func (s *AssignmentService) write(ctx context.Context, owner entities.VariantID, list entities.AssignmentList) error {
	blob, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode assignment list: %w", err)
	}

	if err := s.store.Set(ctx, owner, repositories.AssignmentNamespace, repositories.AssignmentKey, blob); err != nil {
		return fmt.Errorf("failed to persist assignment list: %w", err)
	}
	return nil
}
