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

type ProductHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func NewProductHandler(s *store.Store, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{store: s, logger: logger}
}

type productRequest struct {
	Name     string `json:"name"`
	Barcode  string `json:"barcode"`
	Photo    string `json:"photo"`
	Category string `json:"category"`
}

// productSummary is a product plus the derived figures the list screens show.
type productSummary struct {
	model.Product
	LatestPrice *float64 `json:"latestPrice,omitempty"`
	Delta       float64  `json:"delta"`
}

func summarize(snap model.Snapshot, p model.Product) productSummary {
	s := productSummary{Product: p, Delta: derive.PriceDelta(snap, p.ID)}
	if pe, ok := derive.LatestPrice(snap, p.ID); ok {
		price := pe.Price
		s.LatestPrice = &price
	}
	return s
}

// List handles GET /api/products?q=&sort=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	products := derive.SearchProducts(snap, r.URL.Query().Get("q"))
	derive.SortProducts(snap, products, derive.ParseSortMode(r.URL.Query().Get("sort")))

	out := make([]productSummary, 0, len(products))
	for _, p := range products {
		out = append(out, summarize(snap, p))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/products. The duplicate-barcode pre-check can be
// skipped with ?force=true; the store accepts duplicates either way.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Barcode = strings.TrimSpace(req.Barcode)

	if err := policy.CheckNewProduct(h.store.Snapshot(), req.Name, req.Barcode); err != nil {
		var dup *policy.BarcodeExistsError
		if errors.As(err, &dup) {
			if r.URL.Query().Get("force") != "true" {
				writeJSON(w, http.StatusConflict, map[string]any{
					"error":    "barcode already in use",
					"existing": dup.Existing,
				})
				return
			}
		} else {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	p := h.store.AddProduct(req.Name, req.Barcode, req.Photo, req.Category)
	writeJSON(w, http.StatusCreated, p)
}

// historyRow pairs a price entry with its change versus the next older one.
type historyRow struct {
	model.PriceEntry
	Delta float64 `json:"delta"`
}

// Get handles GET /api/products/{id}: the product together with everything
// the detail screen derives from its history.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p, ok := h.store.Product(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	snap := h.store.Snapshot()
	history := derive.PriceHistory(snap, id)
	rows := make([]historyRow, 0, len(history))
	for i, pe := range history {
		rows = append(rows, historyRow{PriceEntry: pe, Delta: derive.EntryDelta(history, i)})
	}

	resp := map[string]any{
		"product": p,
		"delta":   derive.PriceDelta(snap, id),
		"history": rows,
	}
	if st, ok := derive.PriceStats(snap, id); ok {
		resp["stats"] = st
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.Product(id); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Barcode  *string `json:"barcode"`
		Photo    *string `json:"photo"`
		Category *string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name must not be empty"})
		return
	}

	h.store.UpdateProduct(id, store.ProductPatch{
		Name:     req.Name,
		Barcode:  req.Barcode,
		Photo:    req.Photo,
		Category: req.Category,
	})

	p, _ := h.store.Product(id)
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/products/{id}. Price history and recent-scan
// references go with the product.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.Product(id); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	h.store.DeleteProduct(id)
	w.WriteHeader(http.StatusNoContent)
}

// GetByBarcode handles GET /api/products/barcode/{code}.
func (h *ProductHandler) GetByBarcode(w http.ResponseWriter, r *http.Request) {
	p, ok := h.store.ProductByBarcode(r.PathValue("code"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no product with that barcode"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
