package repositories

import (
	"errors"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
)

// ErrNotFound is returned when a repository lookup misses.
var ErrNotFound = errors.New("not found")

// SupplierCatalog provides access to supplier records. The catalog itself
// lives on the hosted platform; implementations here are read-mostly views.
type SupplierCatalog interface {
	GetSupplier(id entities.SupplierID) (*entities.SupplierRecord, error)
	GetAllSuppliers() ([]*entities.SupplierRecord, error)
	LoadSuppliers(suppliers []*entities.SupplierRecord) error
}
