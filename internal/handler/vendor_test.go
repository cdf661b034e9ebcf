package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dukerupert/pricetrack/internal/model"
)

func TestVendorListWithCounts(t *testing.T) {
	h := NewVendorHandler(seededStore(), testLogger())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/vendors", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []vendorView
	decodeBody(t, rec, &got)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	counts := map[string]int{}
	for _, v := range got {
		counts[v.ID] = v.PriceCount
	}
	if counts["v1"] != 3 || counts["v5"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestVendorCreate(t *testing.T) {
	s := seededStore()
	h := NewVendorHandler(s, testLogger())

	body := jsonBody(t, map[string]string{"name": "Lidl", "category": "supermarket"})
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/vendors", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if len(s.Snapshot().Vendors) != 6 {
		t.Error("vendor not stored")
	}
}

func TestVendorCreateBadCategory(t *testing.T) {
	h := NewVendorHandler(seededStore(), testLogger())

	body := jsonBody(t, map[string]string{"name": "Lidl", "category": "hypermarket"})
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/vendors", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestVendorUpdate(t *testing.T) {
	s := seededStore()
	h := NewVendorHandler(s, testLogger())

	req := httptest.NewRequest(http.MethodPut, "/api/vendors/v3", jsonBody(t, map[string]string{"category": "other"}))
	req.SetPathValue("id", "v3")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	v, _ := s.Vendor("v3")
	if v.Category != model.VendorOther {
		t.Errorf("category = %q", v.Category)
	}
	if v.Name != "Amazon" {
		t.Errorf("name changed: %q", v.Name)
	}
}

func TestVendorDeleteInUseConflict(t *testing.T) {
	s := seededStore()
	h := NewVendorHandler(s, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/vendors/v1", nil)
	req.SetPathValue("id", "v1")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if _, ok := s.Vendor("v1"); !ok {
		t.Error("vendor deleted despite conflict")
	}
}

func TestVendorDeleteUnreferenced(t *testing.T) {
	s := seededStore()
	v := s.AddVendor("Lidl", model.VendorSupermarket, "")
	h := NewVendorHandler(s, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/vendors/"+v.ID, nil)
	req.SetPathValue("id", v.ID)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if _, ok := s.Vendor(v.ID); ok {
		t.Error("vendor still present")
	}
}
