package entities

import "fmt"

// SupplierID uniquely identifies a supplier record in the external catalog
type SupplierID string

// SupplierRecord represents a supplier as stored in the external catalog.
// Assignments reference suppliers by id; they never own them.
type SupplierRecord struct {
	SupplierID   SupplierID `json:"supplier_id"`
	Name         string     `json:"name"`
	ContactName  string     `json:"contact_name,omitempty"`
	ContactEmail string     `json:"contact_email,omitempty"`
	ContactPhone string     `json:"contact_phone,omitempty"`
	AddressLine1 string     `json:"address_line1,omitempty"`
	AddressLine2 string     `json:"address_line2,omitempty"`
	City         string     `json:"city,omitempty"`
	Region       string     `json:"region,omitempty"`
	PostalCode   string     `json:"postal_code,omitempty"`
	Country      string     `json:"country,omitempty"`
}

// NewSupplierRecord creates a validated SupplierRecord
func NewSupplierRecord(id SupplierID, name string) (*SupplierRecord, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("supplier id cannot be empty")
	}

	return &SupplierRecord{
		SupplierID: id,
		Name:       name,
	}, nil
}
