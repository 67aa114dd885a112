package feeds

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoader_ParseCSV(t *testing.T) {
	feed := `SKU,SupplierID,MPN,IsPrimary,LeadTime,Threshold,DailyDemand,LastOrderDate,LastOrderCPU,LastOrderQty,Notes
SKU-A,SUP-1,MPN-100,Y,14,10,2.5,2026-01-15,12.50,100,"Standard reorder, net 30"
SKU-A,SUP-2,,n,21,10,2.5,,8.00,50,
SKU-B,SUP-1,MPN-200,yes,7,5,0.5,2025-11-02,3.99,25,backup only
`

	rows, err := NewLoader().ParseCSV(strings.NewReader(feed))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.SKU != "SKU-A" || first.Assignment.SupplierID != "SUP-1" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if !first.Assignment.IsPrimary {
		t.Error("expected Y to parse as primary")
	}
	if first.Assignment.LeadTimeDays != 14 || first.Assignment.ReorderThreshold != 10 {
		t.Errorf("unexpected numeric fields: %+v", first.Assignment)
	}
	if first.Assignment.DailyDemand != 2.5 {
		t.Errorf("expected daily demand 2.5, got %v", first.Assignment.DailyDemand)
	}
	if !first.Assignment.LastOrderUnitCost.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("expected unit cost 12.50, got %s", first.Assignment.LastOrderUnitCost)
	}
	if first.Assignment.LastOrderDate == nil || first.Assignment.LastOrderDate.Format("2006-01-02") != "2026-01-15" {
		t.Errorf("unexpected last order date: %v", first.Assignment.LastOrderDate)
	}
	if first.Assignment.Notes != "Standard reorder, net 30" {
		t.Errorf("quoted field mishandled: %q", first.Assignment.Notes)
	}

	if rows[1].Assignment.IsPrimary {
		t.Error("expected n to parse as non-primary")
	}
	if rows[1].Assignment.LastOrderDate != nil {
		t.Error("expected empty date to stay nil")
	}
}

func TestLoader_ParseCSV_DropsRowsMissingKeys(t *testing.T) {
	feed := `SKU,SupplierID,MPN,IsPrimary,LeadTime,Threshold,DailyDemand,LastOrderDate,LastOrderCPU,LastOrderQty,Notes
,SUP-1,,Y,14,10,2.5,,,,
SKU-A,,,Y,14,10,2.5,,,,
SKU-B,SUP-1,,Y,14,10,2.5,,,,
`

	rows, err := NewLoader().ParseCSV(strings.NewReader(feed))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("rows missing SKU or SupplierID must be dropped silently, got %d rows", len(rows))
	}
	if rows[0].SKU != "SKU-B" {
		t.Errorf("expected SKU-B to survive, got %s", rows[0].SKU)
	}
}

func TestLoader_ParseCSV_ShortRowsReadAsEmpty(t *testing.T) {
	feed := `SKU,SupplierID,MPN,IsPrimary,LeadTime,Threshold,DailyDemand,LastOrderDate,LastOrderCPU,LastOrderQty,Notes
SKU-A,SUP-1
`

	rows, err := NewLoader().ParseCSV(strings.NewReader(feed))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Assignment.LeadTimeDays != 0 || rows[0].Assignment.DailyDemand != 0 {
		t.Errorf("missing columns must coerce to zero: %+v", rows[0].Assignment)
	}
}

func TestLoader_ParseCSV_Malformed(t *testing.T) {
	tests := []struct {
		name string
		feed string
	}{
		{"empty input", ""},
		{"missing SKU column", "Foo,SupplierID\nx,y\n"},
		{"missing SupplierID column", "SKU,Foo\nx,y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().ParseCSV(strings.NewReader(tt.feed))
			if err == nil {
				t.Fatal("expected malformed input error")
			}
			if !strings.Contains(err.Error(), ErrMalformedInput.Error()) {
				t.Errorf("expected malformed input error, got %v", err)
			}
		})
	}
}

func TestLoader_ParseJSON(t *testing.T) {
	feed := `[
		{"SKU": "SKU-A", "SupplierID": "SUP-1", "IsPrimary": true, "LeadTime": 14, "DailyDemand": 2.5, "LastOrderCPU": "9.95"},
		{"SKU": "SKU-A", "SupplierID": "SUP-2", "IsPrimary": "no", "LeadTime": "21"},
		{"SupplierID": "SUP-3", "LeadTime": 5}
	]`

	rows, err := NewLoader().ParseJSON(strings.NewReader(feed))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (one dropped for missing SKU), got %d", len(rows))
	}

	if !rows[0].Assignment.IsPrimary {
		t.Error("expected JSON true to parse as primary")
	}
	if rows[0].Assignment.LeadTimeDays != 14 {
		t.Errorf("expected numeric LeadTime 14, got %d", rows[0].Assignment.LeadTimeDays)
	}
	if !rows[0].Assignment.LastOrderUnitCost.Equal(decimal.RequireFromString("9.95")) {
		t.Errorf("expected unit cost 9.95, got %s", rows[0].Assignment.LastOrderUnitCost)
	}
	if rows[1].Assignment.IsPrimary {
		t.Error("expected \"no\" to parse as non-primary")
	}
	if rows[1].Assignment.LeadTimeDays != 21 {
		t.Errorf("expected string LeadTime 21 to coerce, got %d", rows[1].Assignment.LeadTimeDays)
	}
}

func TestLoader_ParseJSON_Malformed(t *testing.T) {
	for _, feed := range []string{"", "{", `{"SKU": "A"}`, "not json"} {
		if _, err := NewLoader().ParseJSON(strings.NewReader(feed)); err == nil {
			t.Errorf("expected error for %q", feed)
		}
	}
}

func TestParseTruthy(t *testing.T) {
	truthy := []string{"y", "Y", "yes", "YES", "Yes", "1", "true", "TRUE", " y "}
	for _, v := range truthy {
		if !ParseTruthy(v) {
			t.Errorf("expected %q to be truthy", v)
		}
	}

	falsy := []string{"", "n", "no", "0", "false", "primary", "2"}
	for _, v := range falsy {
		if ParseTruthy(v) {
			t.Errorf("expected %q to be falsy", v)
		}
	}
}

func TestParseNonNegativeFloat(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"2.5", 2.5},
		{" 2.5 ", 2.5},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		if got := ParseNonNegativeFloat(tt.raw); got != tt.want {
			t.Errorf("ParseNonNegativeFloat(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseNonNegativeInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"14", 14},
		{"14.9", 14},
		{"-5", 0},
		{"", 0},
		{"junk", 0},
	}

	for _, tt := range tests {
		if got := ParseNonNegativeInt(tt.raw); got != tt.want {
			t.Errorf("ParseNonNegativeInt(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
