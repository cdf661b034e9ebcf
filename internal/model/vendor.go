package model

// VendorCategory classifies a price source.
type VendorCategory string

const (
	VendorSupermarket VendorCategory = "supermarket"
	VendorOnline      VendorCategory = "online"
	VendorLocal       VendorCategory = "local"
	VendorOther       VendorCategory = "other"
)

// Valid reports whether c is one of the known categories.
func (c VendorCategory) Valid() bool {
	switch c {
	case VendorSupermarket, VendorOnline, VendorLocal, VendorOther:
		return true
	}
	return false
}

// Vendor is a seller/source of prices.
type Vendor struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category VendorCategory `json:"category"`
	Logo     string         `json:"logo,omitempty"`
}
