package store

import "github.com/dukerupert/pricetrack/internal/model"

// PricePatch holds the fields a price update may change.
type PricePatch struct {
	Price    *float64
	VendorID *string
	Date     *model.Date
	Notes    *string
}

// AddPrice creates a price entry with a generated id. The store does not
// verify that productID or vendorID reference live entities.
func (s *Store) AddPrice(productID, vendorID string, price float64, date model.Date, notes string) model.PriceEntry {
	s.mu.Lock()
	pe := model.PriceEntry{
		ID:        s.newID(),
		ProductID: productID,
		VendorID:  vendorID,
		Price:     price,
		Date:      date,
		Notes:     notes,
	}
	s.snap.Prices = append(s.snap.Prices, pe)
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "price", Action: "created", ID: pe.ID}, after)
	return pe
}

// UpdatePrice merges the patch into the entry. No-op if the id is absent.
func (s *Store) UpdatePrice(id string, patch PricePatch) {
	s.mu.Lock()
	idx := s.priceIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	pe := &s.snap.Prices[idx]
	if patch.Price != nil {
		pe.Price = *patch.Price
	}
	if patch.VendorID != nil {
		pe.VendorID = *patch.VendorID
	}
	if patch.Date != nil {
		pe.Date = *patch.Date
	}
	if patch.Notes != nil {
		pe.Notes = *patch.Notes
	}
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "price", Action: "updated", ID: id}, after)
}

// DeletePrice removes a single entry. No-op if the id is absent.
func (s *Store) DeletePrice(id string) {
	s.mu.Lock()
	idx := s.priceIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.snap.Prices = append(s.snap.Prices[:idx], s.snap.Prices[idx+1:]...)
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "price", Action: "deleted", ID: id}, after)
}

// PriceEntry returns the entry with the given id.
func (s *Store) PriceEntry(id string) (model.PriceEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.priceIndex(id); idx >= 0 {
		return s.snap.Prices[idx], true
	}
	return model.PriceEntry{}, false
}

// PricesForProduct returns the entries for a product in insertion order.
func (s *Store) PricesForProduct(productID string) []model.PriceEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.PriceEntry
	for _, pe := range s.snap.Prices {
		if pe.ProductID == productID {
			out = append(out, pe)
		}
	}
	return out
}

func (s *Store) priceIndex(id string) int {
	for i := range s.snap.Prices {
		if s.snap.Prices[i].ID == id {
			return i
		}
	}
	return -1
}
