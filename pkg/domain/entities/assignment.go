package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SupplierAssignment represents one (variant, supplier) pairing with the
// ordering parameters an operator maintains for it. The variant's assignment
// list owns its assignments exclusively.
type SupplierAssignment struct {
	SupplierID             SupplierID      `json:"supplier_id"`
	ManufacturerPartNumber string          `json:"manufacturer_part_number,omitempty"`
	LeadTimeDays           int             `json:"lead_time_days"`
	ReorderThreshold       int             `json:"reorder_threshold"`
	DailyDemand            float64         `json:"daily_demand"`
	LastOrderDate          *time.Time      `json:"last_order_date,omitempty"`
	LastOrderUnitCost      decimal.Decimal `json:"last_order_unit_cost"`
	LastOrderQuantity      int             `json:"last_order_quantity"`
	Notes                  string          `json:"notes,omitempty"`
	IsPrimary              bool            `json:"is_primary"`
}

// AssignmentList is a variant's ordered list of supplier assignments.
// A non-empty list carries exactly one primary assignment; every transform
// below re-establishes that invariant before returning.
type AssignmentList []SupplierAssignment

// Normalize enforces primary uniqueness on a list built from external or
// untrusted data. If no assignment is marked primary the first one becomes
// primary; if several are marked, the last marked one is kept and the
// earlier ones are demoted.
func (l AssignmentList) Normalize() AssignmentList {
	if len(l) == 0 {
		return l
	}

	out := make(AssignmentList, len(l))
	copy(out, l)

	lastPrimary := -1
	for i := range out {
		if out[i].IsPrimary {
			lastPrimary = i
		}
	}

	if lastPrimary == -1 {
		lastPrimary = 0
	}

	for i := range out {
		out[i].IsPrimary = i == lastPrimary
	}

	return out
}

// AddOrUpdate replaces the assignment at index when index is in range and
// appends otherwise. An incoming primary demotes every other assignment.
func (l AssignmentList) AddOrUpdate(a SupplierAssignment, index int) AssignmentList {
	out := make(AssignmentList, len(l))
	copy(out, l)

	if a.IsPrimary {
		for i := range out {
			out[i].IsPrimary = false
		}
	}

	if index >= 0 && index < len(out) {
		out[index] = a
	} else {
		out = append(out, a)
	}

	return out.Normalize()
}

// Remove deletes the assignment at index. If the removed assignment was
// primary, the first remaining assignment is promoted. Out-of-range indexes
// leave the list unchanged.
func (l AssignmentList) Remove(index int) AssignmentList {
	if index < 0 || index >= len(l) {
		return l
	}

	out := make(AssignmentList, 0, len(l)-1)
	out = append(out, l[:index]...)
	out = append(out, l[index+1:]...)

	return out.Normalize()
}

// Primary returns the primary assignment of the list, or false when the
// list is empty.
func (l AssignmentList) Primary() (SupplierAssignment, bool) {
	for _, a := range l {
		if a.IsPrimary {
			return a, true
		}
	}
	if len(l) > 0 {
		return l[0], true
	}
	return SupplierAssignment{}, false
}

// DecodeAssignmentBlob is the single upconversion point for persisted
// assignment data. Current blobs hold a JSON array; legacy blobs hold a
// single assignment object, which upconverts to a one-element
// implicitly-primary list. The result is always normalized.
func DecodeAssignmentBlob(raw []byte) (AssignmentList, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var list AssignmentList
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to decode assignment list: %w", err)
		}
		return list.Normalize(), nil
	case '{':
		var single SupplierAssignment
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, fmt.Errorf("failed to decode legacy assignment object: %w", err)
		}
		single.IsPrimary = true
		return AssignmentList{single}, nil
	default:
		return nil, fmt.Errorf("assignment blob is neither object nor array")
	}
}
