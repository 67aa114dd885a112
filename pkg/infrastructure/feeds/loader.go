package feeds

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
)

// ErrMalformedInput marks structurally fatal feed problems (empty file,
// missing header, unparsable JSON). Nothing is imported from such a feed.
var ErrMalformedInput = errors.New("malformed import input")

// Import feed column names. Both the tabular header and JSON object keys
// are case-sensitive.
const (
	colSKU           = "SKU"
	colSupplierID    = "SupplierID"
	colMPN           = "MPN"
	colIsPrimary     = "IsPrimary"
	colLeadTime      = "LeadTime"
	colThreshold     = "Threshold"
	colDailyDemand   = "DailyDemand"
	colLastOrderDate = "LastOrderDate"
	colLastOrderCPU  = "LastOrderCPU"
	colLastOrderQty  = "LastOrderQty"
	colNotes         = "Notes"
)

const dateLayout = "2006-01-02"

// Format selects the feed encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Loader parses external import feeds into rows
type Loader struct{}

// NewLoader creates a new feed loader
func NewLoader() *Loader {
	return &Loader{}
}

// Parse reads an import feed in the given format. Rows missing SKU or
// SupplierID are dropped before they reach grouping; they are not failures.
func (l *Loader) Parse(r io.Reader, format Format) ([]entities.ImportRow, error) {
	switch format {
	case FormatCSV:
		return l.ParseCSV(r)
	case FormatJSON:
		return l.ParseJSON(r)
	default:
		return nil, fmt.Errorf("unsupported feed format: %s", format)
	}
}

// ParseCSV parses a delimited feed with a header row. Quoted fields are
// handled by the reader; short rows read as empty values.
func (l *Loader) ParseCSV(r io.Reader) ([]entities.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: feed has no header row", ErrMalformedInput)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}

	if _, ok := columns[colSKU]; !ok {
		return nil, fmt.Errorf("%w: header is missing %s column", ErrMalformedInput, colSKU)
	}
	if _, ok := columns[colSupplierID]; !ok {
		return nil, fmt.Errorf("%w: header is missing %s column", ErrMalformedInput, colSupplierID)
	}

	var rows []entities.ImportRow
	for _, record := range records[1:] {
		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		if row, ok := buildRow(field); ok {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// ParseJSON parses a JSON array of row objects.
func (l *Loader) ParseJSON(r io.Reader) ([]entities.ImportRow, error) {
	var objects []map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&objects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	var rows []entities.ImportRow
	for _, obj := range objects {
		field := func(name string) string {
			return strings.TrimSpace(flexibleString(obj[name]))
		}

		if row, ok := buildRow(field); ok {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// buildRow assembles one ImportRow from a field accessor. Returns false for
// rows without a SKU or supplier id, which are silently dropped.
func buildRow(field func(string) string) (entities.ImportRow, bool) {
	sku := field(colSKU)
	supplierID := field(colSupplierID)
	if sku == "" || supplierID == "" {
		return entities.ImportRow{}, false
	}

	assignment := entities.SupplierAssignment{
		SupplierID:             entities.SupplierID(supplierID),
		ManufacturerPartNumber: field(colMPN),
		IsPrimary:              ParseTruthy(field(colIsPrimary)),
		LeadTimeDays:           ParseNonNegativeInt(field(colLeadTime)),
		ReorderThreshold:       ParseNonNegativeInt(field(colThreshold)),
		DailyDemand:            ParseNonNegativeFloat(field(colDailyDemand)),
		LastOrderUnitCost:      parseNonNegativeDecimal(field(colLastOrderCPU)),
		LastOrderQuantity:      ParseNonNegativeInt(field(colLastOrderQty)),
		Notes:                  field(colNotes),
	}

	if t, err := time.Parse(dateLayout, field(colLastOrderDate)); err == nil {
		assignment.LastOrderDate = &t
	}

	return entities.ImportRow{SKU: entities.SKU(sku), Assignment: assignment}, true
}

// ParseTruthy reports whether a raw feed value marks an assignment primary.
// Accepted truthy values: y, yes, 1, true (case-insensitive).
func ParseTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "1", "true":
		return true
	default:
		return false
	}
}

// ParseNonNegativeFloat coerces a raw feed value to a non-negative float.
// Empty, non-numeric, NaN and negative input all coerce to 0.
func ParseNonNegativeFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseNonNegativeInt coerces a raw feed value to a non-negative integer,
// truncating fractional input toward zero.
func ParseNonNegativeInt(raw string) int {
	return int(ParseNonNegativeFloat(raw))
}

func parseNonNegativeDecimal(raw string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// flexibleString converts a raw JSON value to a string, tolerating numeric
// and boolean values where a string is expected.
func flexibleString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'g', -1, 64)
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}

	return string(raw)
}
