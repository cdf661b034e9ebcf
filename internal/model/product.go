package model

// Product is a trackable item identified by a barcode. Barcode uniqueness is
// not enforced here; duplicate detection is a policy-layer concern.
type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Barcode   string `json:"barcode"`
	Photo     string `json:"photo,omitempty"`
	DateAdded Date   `json:"dateAdded"`
	Category  string `json:"category,omitempty"`
}

// PriceEntry is one observed price of a Product at a Vendor on a date.
// ProductID and VendorID are not validated against live entities by the store.
type PriceEntry struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	VendorID  string  `json:"vendorId"`
	Date      Date    `json:"date"`
	Notes     string  `json:"notes,omitempty"`
}
