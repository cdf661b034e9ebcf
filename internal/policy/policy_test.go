package policy

import (
	"errors"
	"testing"
	"time"

	"github.com/dukerupert/pricetrack/internal/model"
)

func fixture() model.Snapshot {
	return model.Snapshot{
		Products: []model.Product{
			{ID: "p1", Name: "Nutella 750g", Barcode: "3017620422003"},
		},
		Vendors: []model.Vendor{
			{ID: "v1", Name: "Carrefour", Category: model.VendorSupermarket},
			{ID: "v2", Name: "Amazon", Category: model.VendorOnline},
		},
		Prices: []model.PriceEntry{
			{ID: "pr1", ProductID: "p1", VendorID: "v1", Price: 5.99, Date: model.NewDate(2024, time.January, 15)},
			{ID: "pr2", ProductID: "p1", VendorID: "v1", Price: 6.49, Date: model.NewDate(2024, time.January, 20)},
		},
	}
}

func TestCheckDeleteVendorRefusedWhenReferenced(t *testing.T) {
	err := CheckDeleteVendor(fixture(), "v1")
	if err == nil {
		t.Fatal("expected refusal for referenced vendor")
	}

	var inUse *VendorInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("error type = %T, want *VendorInUseError", err)
	}
	if inUse.Count != 2 {
		t.Errorf("count = %d, want 2", inUse.Count)
	}
}

func TestCheckDeleteVendorUnreferencedAllowed(t *testing.T) {
	if err := CheckDeleteVendor(fixture(), "v2"); err != nil {
		t.Errorf("unreferenced vendor should be deletable: %v", err)
	}
}

func TestCheckNewProductDuplicateBarcode(t *testing.T) {
	err := CheckNewProduct(fixture(), "Another Nutella", "3017620422003")
	if err == nil {
		t.Fatal("expected duplicate barcode error")
	}

	var dup *BarcodeExistsError
	if !errors.As(err, &dup) {
		t.Fatalf("error type = %T, want *BarcodeExistsError", err)
	}
	if dup.Existing.ID != "p1" {
		t.Errorf("existing product = %s, want p1", dup.Existing.ID)
	}
}

func TestCheckNewProductValidation(t *testing.T) {
	snap := fixture()

	if err := CheckNewProduct(snap, "", "123"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name: err = %v, want ErrEmptyName", err)
	}
	if err := CheckNewProduct(snap, "Milk", "  "); !errors.Is(err, ErrEmptyBarcode) {
		t.Errorf("blank barcode: err = %v, want ErrEmptyBarcode", err)
	}
	if err := CheckNewProduct(snap, "Milk", "999"); err != nil {
		t.Errorf("valid product: err = %v, want nil", err)
	}
}

func TestCheckNewPrice(t *testing.T) {
	snap := fixture()

	if err := CheckNewPrice(snap, "p1", "v1", 3.49); err != nil {
		t.Errorf("valid price: err = %v", err)
	}
	if err := CheckNewPrice(snap, "p1", "v1", 0); !errors.Is(err, ErrNonPositivePrice) {
		t.Errorf("zero price: err = %v, want ErrNonPositivePrice", err)
	}
	if err := CheckNewPrice(snap, "p1", "v1", -1); !errors.Is(err, ErrNonPositivePrice) {
		t.Errorf("negative price: err = %v, want ErrNonPositivePrice", err)
	}
	if err := CheckNewPrice(snap, "ghost", "v1", 1); !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("unknown product: err = %v, want ErrUnknownProduct", err)
	}
	if err := CheckNewPrice(snap, "p1", "ghost", 1); !errors.Is(err, ErrUnknownVendor) {
		t.Errorf("unknown vendor: err = %v, want ErrUnknownVendor", err)
	}
}

func TestCheckVendor(t *testing.T) {
	if err := CheckVendor("Lidl", model.VendorSupermarket); err != nil {
		t.Errorf("valid vendor: err = %v", err)
	}
	if err := CheckVendor(" ", model.VendorSupermarket); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name: err = %v, want ErrEmptyName", err)
	}
	if err := CheckVendor("Lidl", model.VendorCategory("bodega")); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("bad category: err = %v, want ErrInvalidCategory", err)
	}
}

func TestCheckListName(t *testing.T) {
	if err := CheckListName("Courses"); err != nil {
		t.Errorf("valid name: err = %v", err)
	}
	if err := CheckListName("\t "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name: err = %v, want ErrEmptyName", err)
	}
}
