package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
)

// Loader loads supplier catalog and variant index fixtures from CSV files.
// These files stand in for the hosted platform when running offline.
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadSuppliers loads supplier records from a CSV file
func (l *Loader) LoadSuppliers(filename string) ([]*entities.SupplierRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open suppliers file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read suppliers CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("suppliers CSV must have header and at least one data row")
	}

	expectedHeader := []string{"supplier_id", "name", "contact_name", "contact_email", "contact_phone", "city", "country"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("suppliers CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var suppliers []*entities.SupplierRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("suppliers CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		supplier, err := parseSupplier(record)
		if err != nil {
			return nil, fmt.Errorf("suppliers CSV row %d: %w", i+2, err)
		}

		suppliers = append(suppliers, supplier)
	}

	return suppliers, nil
}

// LoadVariants loads variant snapshots from a CSV file
func (l *Loader) LoadVariants(filename string) ([]*entities.VariantSnapshot, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open variants file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read variants CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("variants CSV must have header and at least one data row")
	}

	expectedHeader := []string{"sku", "variant_id", "product_title", "on_hand_quantity"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("variants CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var variants []*entities.VariantSnapshot
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("variants CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		variant, err := parseVariant(record)
		if err != nil {
			return nil, fmt.Errorf("variants CSV row %d: %w", i+2, err)
		}

		variants = append(variants, variant)
	}

	return variants, nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseSupplier(record []string) (*entities.SupplierRecord, error) {
	supplier, err := entities.NewSupplierRecord(entities.SupplierID(record[0]), record[1])
	if err != nil {
		return nil, err
	}

	supplier.ContactName = record[2]
	supplier.ContactEmail = record[3]
	supplier.ContactPhone = record[4]
	supplier.City = record[5]
	supplier.Country = record[6]

	return supplier, nil
}

func parseVariant(record []string) (*entities.VariantSnapshot, error) {
	sku := entities.SKU(record[0])
	if sku == "" {
		return nil, fmt.Errorf("sku cannot be empty")
	}

	variantID := entities.VariantID(record[1])
	if variantID == "" {
		return nil, fmt.Errorf("variant_id cannot be empty")
	}

	onHand, err := strconv.Atoi(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid on_hand_quantity: %s", record[3])
	}

	return &entities.VariantSnapshot{
		SKU:            sku,
		VariantID:      variantID,
		ProductTitle:   record[2],
		OnHandQuantity: onHand,
	}, nil
}
