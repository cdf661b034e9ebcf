package store

import "github.com/dukerupert/pricetrack/internal/model"

// ProductPatch holds the fields an update may change. Nil fields are left
// untouched.
type ProductPatch struct {
	Name     *string
	Barcode  *string
	Photo    *string
	Category *string
}

// AddProduct creates a product with a generated id and today's date. The
// store accepts any name/barcode combination, including duplicate barcodes;
// callers wanting uniqueness run the policy check first.
func (s *Store) AddProduct(name, barcode, photo, category string) model.Product {
	s.mu.Lock()
	p := model.Product{
		ID:        s.newID(),
		Name:      name,
		Barcode:   barcode,
		Photo:     photo,
		Category:  category,
		DateAdded: s.today(),
	}
	s.snap.Products = append(s.snap.Products, p)
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "product", Action: "created", ID: p.ID}, after)
	return p
}

// UpdateProduct merges the patch into the product. No-op if the id is absent.
func (s *Store) UpdateProduct(id string, patch ProductPatch) {
	s.mu.Lock()
	idx := s.productIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	p := &s.snap.Products[idx]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Barcode != nil {
		p.Barcode = *patch.Barcode
	}
	if patch.Photo != nil {
		p.Photo = *patch.Photo
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "product", Action: "updated", ID: id}, after)
}

// DeleteProduct removes the product, every price entry referencing it, and
// its id from recent scans. No-op if the id is absent.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	idx := s.productIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.snap.Products = append(s.snap.Products[:idx], s.snap.Products[idx+1:]...)

	prices := s.snap.Prices[:0]
	for _, pe := range s.snap.Prices {
		if pe.ProductID != id {
			prices = append(prices, pe)
		}
	}
	s.snap.Prices = prices

	scans := s.snap.RecentScans[:0]
	for _, scan := range s.snap.RecentScans {
		if scan != id {
			scans = append(scans, scan)
		}
	}
	s.snap.RecentScans = scans

	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "product", Action: "deleted", ID: id}, after)
}

// Product returns the product with the given id.
func (s *Store) Product(id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.productIndex(id); idx >= 0 {
		return s.snap.Products[idx], true
	}
	return model.Product{}, false
}

// ProductByBarcode returns the first product (in insertion order) whose
// barcode exactly matches code. Later products sharing the barcode are not
// reported; the policy layer warns about duplicates at creation time.
func (s *Store) ProductByBarcode(code string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.snap.Products {
		if p.Barcode == code {
			return p, true
		}
	}
	return model.Product{}, false
}

func (s *Store) productIndex(id string) int {
	for i := range s.snap.Products {
		if s.snap.Products[i].ID == id {
			return i
		}
	}
	return -1
}
