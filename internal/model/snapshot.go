package model

// Snapshot is the full in-memory state of all collections at a point in time.
// The JSON form is the persisted blob format; key names are fixed and changing
// them would require a manual migration of stored data.
type Snapshot struct {
	Products      []Product      `json:"products"`
	Prices        []PriceEntry   `json:"prices"`
	Vendors       []Vendor       `json:"vendors"`
	ShoppingLists []ShoppingList `json:"shoppingLists"`
	RecentScans   []string       `json:"recentScans"`
}

// Product returns the product with the given id, if present.
func (s Snapshot) Product(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Vendor returns the vendor with the given id, if present.
func (s Snapshot) Vendor(id string) (Vendor, bool) {
	for _, v := range s.Vendors {
		if v.ID == id {
			return v, true
		}
	}
	return Vendor{}, false
}

// Clone returns a deep copy. Readers and observers get clones so they can
// never alias the store's internal slices.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Products:      append([]Product(nil), s.Products...),
		Prices:        append([]PriceEntry(nil), s.Prices...),
		Vendors:       append([]Vendor(nil), s.Vendors...),
		ShoppingLists: append([]ShoppingList(nil), s.ShoppingLists...),
		RecentScans:   append([]string(nil), s.RecentScans...),
	}
	for i := range out.ShoppingLists {
		out.ShoppingLists[i].Items = append([]ShoppingListItem(nil), out.ShoppingLists[i].Items...)
	}
	return out
}
