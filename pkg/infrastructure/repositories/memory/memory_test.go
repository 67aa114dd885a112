package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/domain/repositories"
)

func TestSupplierCatalog_SaveGetDelete(t *testing.T) {
	catalog := NewSupplierCatalog()

	supplier := &entities.SupplierRecord{SupplierID: "SUP-1", Name: "Acme Components"}
	if err := catalog.SaveSupplier(supplier); err != nil {
		t.Fatalf("SaveSupplier failed: %v", err)
	}

	got, err := catalog.GetSupplier("SUP-1")
	if err != nil {
		t.Fatalf("GetSupplier failed: %v", err)
	}
	if got.Name != "Acme Components" {
		t.Errorf("expected Acme Components, got %s", got.Name)
	}

	if _, err := catalog.GetSupplier("SUP-2"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := catalog.DeleteSupplier("SUP-1"); err != nil {
		t.Fatalf("DeleteSupplier failed: %v", err)
	}
	if _, err := catalog.GetSupplier("SUP-1"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSupplierCatalog_SaveSupplier_Validation(t *testing.T) {
	catalog := NewSupplierCatalog()

	if err := catalog.SaveSupplier(nil); err == nil {
		t.Error("expected error for nil supplier")
	}
	if err := catalog.SaveSupplier(&entities.SupplierRecord{}); err == nil {
		t.Error("expected error for empty supplier id")
	}
}

func TestSupplierCatalog_GetAllSuppliers_Sorted(t *testing.T) {
	catalog := NewSupplierCatalog()
	for _, id := range []entities.SupplierID{"SUP-3", "SUP-1", "SUP-2"} {
		if err := catalog.SaveSupplier(&entities.SupplierRecord{SupplierID: id, Name: string(id)}); err != nil {
			t.Fatalf("SaveSupplier failed: %v", err)
		}
	}

	suppliers, err := catalog.GetAllSuppliers()
	if err != nil {
		t.Fatalf("GetAllSuppliers failed: %v", err)
	}

	if len(suppliers) != 3 {
		t.Fatalf("expected 3 suppliers, got %d", len(suppliers))
	}
	for i, want := range []entities.SupplierID{"SUP-1", "SUP-2", "SUP-3"} {
		if suppliers[i].SupplierID != want {
			t.Errorf("expected %s at position %d, got %s", want, i, suppliers[i].SupplierID)
		}
	}
}

func TestVariantIndex_GetVariant(t *testing.T) {
	index := NewVariantIndex()
	err := index.LoadVariants([]*entities.VariantSnapshot{
		{SKU: "SKU-A", VariantID: "gid-1", OnHandQuantity: 12},
	})
	if err != nil {
		t.Fatalf("LoadVariants failed: %v", err)
	}

	got, err := index.GetVariant("SKU-A")
	if err != nil {
		t.Fatalf("GetVariant failed: %v", err)
	}
	if got.OnHandQuantity != 12 {
		t.Errorf("expected on hand 12, got %d", got.OnHandQuantity)
	}

	if _, err := index.GetVariant("SKU-B"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAssignmentStore_LastWriteWins(t *testing.T) {
	store := NewAssignmentStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "gid-1", "inventory", "supplier_data"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing entry, got %v", err)
	}

	if err := store.Set(ctx, "gid-1", "inventory", "supplier_data", []byte("first")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ctx, "gid-1", "inventory", "supplier_data", []byte("second")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, "gid-1", "inventory", "supplier_data")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("expected last write to win, got %q", got)
	}

	// Different owners do not collide.
	if _, err := store.Get(ctx, "gid-2", "inventory", "supplier_data"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound for other owner, got %v", err)
	}
}
