package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/pricetrack/internal/model"
	"github.com/dukerupert/pricetrack/internal/policy"
	"github.com/dukerupert/pricetrack/internal/store"
)

type PriceHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func NewPriceHandler(s *store.Store, logger *slog.Logger) *PriceHandler {
	return &PriceHandler{store: s, logger: logger}
}

type priceRequest struct {
	ProductID string  `json:"productId"`
	VendorID  string  `json:"vendorId"`
	Price     float64 `json:"price"`
	Date      string  `json:"date"`
	Notes     string  `json:"notes"`
}

// Create handles POST /api/prices. An empty date records the entry for
// today.
func (h *PriceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := policy.CheckNewPrice(h.store.Snapshot(), req.ProductID, req.VendorID, req.Price); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	date := model.DateOf(time.Now())
	if s := strings.TrimSpace(req.Date); s != "" {
		var err error
		date, err = model.ParseDate(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
			return
		}
	}

	pe := h.store.AddPrice(req.ProductID, req.VendorID, req.Price, date, req.Notes)
	writeJSON(w, http.StatusCreated, pe)
}

// Update handles PUT /api/prices/{id}.
func (h *PriceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.PriceEntry(id); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "price entry not found"})
		return
	}

	var req struct {
		Price    *float64 `json:"price"`
		VendorID *string  `json:"vendorId"`
		Date     *string  `json:"date"`
		Notes    *string  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.Price != nil && *req.Price <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price must be positive"})
		return
	}
	if req.VendorID != nil {
		if _, ok := h.store.Vendor(*req.VendorID); !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown vendor"})
			return
		}
	}

	patch := store.PricePatch{Price: req.Price, VendorID: req.VendorID, Notes: req.Notes}
	if req.Date != nil {
		date, err := model.ParseDate(*req.Date)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
			return
		}
		patch.Date = &date
	}

	h.store.UpdatePrice(id, patch)

	pe, _ := h.store.PriceEntry(id)
	writeJSON(w, http.StatusOK, pe)
}

// Delete handles DELETE /api/prices/{id}.
func (h *PriceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.PriceEntry(id); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "price entry not found"})
		return
	}

	h.store.DeletePrice(id)
	w.WriteHeader(http.StatusNoContent)
}
