package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/pricetrack/internal/store"
)

type ScanHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func NewScanHandler(s *store.Store, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{store: s, logger: logger}
}

// List handles GET /api/scans: recently scanned products, most recent first.
func (h *ScanHandler) List(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	out := make([]productSummary, 0, len(snap.RecentScans))
	for _, id := range snap.RecentScans {
		if p, ok := snap.Product(id); ok {
			out = append(out, summarize(snap, p))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Record handles POST /api/scans. A known barcode moves its product to the
// front of the recent list and returns it; an unknown barcode gets 404 so
// the client can offer to create the product.
func (h *ScanHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Barcode string `json:"barcode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Barcode = strings.TrimSpace(req.Barcode)
	if req.Barcode == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "barcode must not be empty"})
		return
	}

	p, ok := h.store.ProductByBarcode(req.Barcode)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":   "no product with that barcode",
			"barcode": req.Barcode,
		})
		return
	}

	h.store.AddRecentScan(p.ID)
	writeJSON(w, http.StatusOK, p)
}
