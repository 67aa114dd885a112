package memory

import (
	"fmt"
	"sort"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/domain/repositories"
)

// SupplierCatalog provides an in-memory view of supplier records
type SupplierCatalog struct {
	suppliers map[entities.SupplierID]entities.SupplierRecord
}

// NewSupplierCatalog creates a new in-memory supplier catalog
func NewSupplierCatalog() *SupplierCatalog {
	return &SupplierCatalog{
		suppliers: make(map[entities.SupplierID]entities.SupplierRecord),
	}
}

// Verify interface compliance
var _ repositories.SupplierCatalog = (*SupplierCatalog)(nil)

// LoadSuppliers loads supplier records into the catalog
func (c *SupplierCatalog) LoadSuppliers(suppliers []*entities.SupplierRecord) error {
	for _, s := range suppliers {
		if err := c.SaveSupplier(s); err != nil {
			return err
		}
	}
	return nil
}

// SaveSupplier adds or replaces one supplier record
func (c *SupplierCatalog) SaveSupplier(s *entities.SupplierRecord) error {
	if s == nil {
		return fmt.Errorf("supplier cannot be nil")
	}
	if s.SupplierID == "" {
		return fmt.Errorf("supplier id cannot be empty")
	}

	c.suppliers[s.SupplierID] = *s
	return nil
}

// DeleteSupplier removes one supplier record
func (c *SupplierCatalog) DeleteSupplier(id entities.SupplierID) error {
	if _, ok := c.suppliers[id]; !ok {
		return fmt.Errorf("supplier %s: %w", id, repositories.ErrNotFound)
	}
	delete(c.suppliers, id)
	return nil
}

// GetSupplier returns one supplier record by id
func (c *SupplierCatalog) GetSupplier(id entities.SupplierID) (*entities.SupplierRecord, error) {
	s, ok := c.suppliers[id]
	if !ok {
		return nil, fmt.Errorf("supplier %s: %w", id, repositories.ErrNotFound)
	}
	return &s, nil
}

// GetAllSuppliers returns all supplier records sorted by id
func (c *SupplierCatalog) GetAllSuppliers() ([]*entities.SupplierRecord, error) {
	suppliers := make([]*entities.SupplierRecord, 0, len(c.suppliers))
	for id := range c.suppliers {
		s := c.suppliers[id]
		suppliers = append(suppliers, &s)
	}
	sort.Slice(suppliers, func(i, j int) bool {
		return suppliers[i].SupplierID < suppliers[j].SupplierID
	})
	return suppliers, nil
}
