package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/pricetrack/internal/derive"
	"github.com/dukerupert/pricetrack/internal/model"
	"github.com/dukerupert/pricetrack/internal/policy"
	"github.com/dukerupert/pricetrack/internal/store"
)

type VendorHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func NewVendorHandler(s *store.Store, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{store: s, logger: logger}
}

type vendorRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Logo     string `json:"logo"`
}

type vendorView struct {
	model.Vendor
	PriceCount int `json:"priceCount"`
}

// List handles GET /api/vendors.
func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	out := make([]vendorView, 0, len(snap.Vendors))
	for _, v := range snap.Vendors {
		out = append(out, vendorView{Vendor: v, PriceCount: derive.VendorPriceCount(snap, v.ID)})
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/vendors.
func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := policy.CheckVendor(req.Name, model.VendorCategory(req.Category)); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	v := h.store.AddVendor(req.Name, model.VendorCategory(req.Category), req.Logo)
	writeJSON(w, http.StatusCreated, v)
}

// Update handles PUT /api/vendors/{id}.
func (h *VendorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.Vendor(id); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "vendor not found"})
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Category *string `json:"category"`
		Logo     *string `json:"logo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name must not be empty"})
		return
	}

	patch := store.VendorPatch{Name: req.Name, Logo: req.Logo}
	if req.Category != nil {
		cat := model.VendorCategory(*req.Category)
		if !cat.Valid() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown vendor category"})
			return
		}
		patch.Category = &cat
	}

	h.store.UpdateVendor(id, patch)

	v, _ := h.store.Vendor(id)
	writeJSON(w, http.StatusOK, v)
}

// Delete handles DELETE /api/vendors/{id}. A vendor still referenced by
// price entries is refused with 409 so history stays intact.
func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.Vendor(id); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "vendor not found"})
		return
	}

	if err := policy.CheckDeleteVendor(h.store.Snapshot(), id); err != nil {
		var inUse *policy.VendorInUseError
		if errors.As(err, &inUse) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"error":      "vendor has price entries",
				"priceCount": inUse.Count,
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	h.store.DeleteVendor(id)
	w.WriteHeader(http.StatusNoContent)
}
