package store

import "github.com/dukerupert/pricetrack/internal/model"

// VendorPatch holds the fields a vendor update may change.
type VendorPatch struct {
	Name     *string
	Category *model.VendorCategory
	Logo     *string
}

// AddVendor creates a vendor with a generated id.
func (s *Store) AddVendor(name string, category model.VendorCategory, logo string) model.Vendor {
	s.mu.Lock()
	v := model.Vendor{
		ID:       s.newID(),
		Name:     name,
		Category: category,
		Logo:     logo,
	}
	s.snap.Vendors = append(s.snap.Vendors, v)
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "vendor", Action: "created", ID: v.ID}, after)
	return v
}

// UpdateVendor merges the patch into the vendor. No-op if the id is absent.
func (s *Store) UpdateVendor(id string, patch VendorPatch) {
	s.mu.Lock()
	idx := s.vendorIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	v := &s.snap.Vendors[idx]
	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Category != nil {
		v.Category = *patch.Category
	}
	if patch.Logo != nil {
		v.Logo = *patch.Logo
	}
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "vendor", Action: "updated", ID: id}, after)
}

// DeleteVendor removes the vendor. It does not cascade and does not check
// whether price entries still reference it; callers run
// policy.CheckDeleteVendor first. No-op if the id is absent.
func (s *Store) DeleteVendor(id string) {
	s.mu.Lock()
	idx := s.vendorIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.snap.Vendors = append(s.snap.Vendors[:idx], s.snap.Vendors[idx+1:]...)
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "vendor", Action: "deleted", ID: id}, after)
}

// Vendor returns the vendor with the given id.
func (s *Store) Vendor(id string) (model.Vendor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.vendorIndex(id); idx >= 0 {
		return s.snap.Vendors[idx], true
	}
	return model.Vendor{}, false
}

func (s *Store) vendorIndex(id string) int {
	for i := range s.snap.Vendors {
		if s.snap.Vendors[i].ID == id {
			return i
		}
	}
	return -1
}
