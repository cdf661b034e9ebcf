// Package policy holds the pre-condition checks callers run before invoking
// store mutations. The store itself stays permissive; keeping the checks here
// means they can be tested, relaxed, or tightened without touching it.
package policy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dukerupert/pricetrack/internal/derive"
	"github.com/dukerupert/pricetrack/internal/model"
)

var (
	// ErrEmptyName rejects blank entity names.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrEmptyBarcode rejects blank barcodes.
	ErrEmptyBarcode = errors.New("barcode must not be empty")
	// ErrInvalidCategory rejects unknown vendor categories.
	ErrInvalidCategory = errors.New("invalid vendor category")
	// ErrNonPositivePrice rejects prices that are zero or negative.
	ErrNonPositivePrice = errors.New("price must be greater than zero")
	// ErrUnknownProduct rejects price entries for products that do not exist.
	ErrUnknownProduct = errors.New("product does not exist")
	// ErrUnknownVendor rejects price entries for vendors that do not exist.
	ErrUnknownVendor = errors.New("vendor does not exist")
)

// VendorInUseError refuses vendor deletion while price entries reference it.
type VendorInUseError struct {
	VendorID string
	Count    int
}

func (e *VendorInUseError) Error() string {
	return fmt.Sprintf("vendor %s is referenced by %d price entries", e.VendorID, e.Count)
}

// BarcodeExistsError reports that another product already carries a barcode.
// The store permits the duplicate; callers decide whether to warn or refuse.
type BarcodeExistsError struct {
	Barcode  string
	Existing model.Product
}

func (e *BarcodeExistsError) Error() string {
	return fmt.Sprintf("barcode %s already used by product %s (%s)", e.Barcode, e.Existing.ID, e.Existing.Name)
}

// CheckDeleteVendor refuses deletion of a vendor that price entries still
// reference. Deleting an unreferenced vendor is allowed.
func CheckDeleteVendor(snap model.Snapshot, vendorID string) error {
	if n := derive.VendorPriceCount(snap, vendorID); n > 0 {
		return &VendorInUseError{VendorID: vendorID, Count: n}
	}
	return nil
}

// CheckNewProduct validates fields for a product about to be created and
// reports an existing product holding the same barcode.
func CheckNewProduct(snap model.Snapshot, name, barcode string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(barcode) == "" {
		return ErrEmptyBarcode
	}
	for _, p := range snap.Products {
		if p.Barcode == barcode {
			return &BarcodeExistsError{Barcode: barcode, Existing: p}
		}
	}
	return nil
}

// CheckNewPrice validates a price observation before it is recorded: the
// magnitude must be positive and both referenced entities must exist.
func CheckNewPrice(snap model.Snapshot, productID, vendorID string, price float64) error {
	if price <= 0 {
		return ErrNonPositivePrice
	}
	if !productExists(snap, productID) {
		return ErrUnknownProduct
	}
	if !vendorExists(snap, vendorID) {
		return ErrUnknownVendor
	}
	return nil
}

// CheckVendor validates vendor fields.
func CheckVendor(name string, category model.VendorCategory) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if !category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// CheckListName validates a shopping list name.
func CheckListName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

func productExists(snap model.Snapshot, id string) bool {
	for _, p := range snap.Products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func vendorExists(snap model.Snapshot, id string) bool {
	for _, v := range snap.Vendors {
		if v.ID == id {
			return true
		}
	}
	return false
}
