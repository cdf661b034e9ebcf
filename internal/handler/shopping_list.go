package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/pricetrack/internal/derive"
	"github.com/dukerupert/pricetrack/internal/model"
	"github.com/dukerupert/pricetrack/internal/policy"
	"github.com/dukerupert/pricetrack/internal/store"
)

type ShoppingListHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func NewShoppingListHandler(s *store.Store, logger *slog.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{store: s, logger: logger}
}

type listSummary struct {
	model.ShoppingList
	Estimate float64 `json:"estimate"`
	Progress float64 `json:"progress"`
}

func summarizeList(snap model.Snapshot, l model.ShoppingList) listSummary {
	return listSummary{
		ShoppingList: l,
		Estimate:     derive.ListEstimate(snap, l),
		Progress:     derive.ListProgress(l),
	}
}

// List handles GET /api/lists.
func (h *ShoppingListHandler) List(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	out := make([]listSummary, 0, len(snap.ShoppingLists))
	for _, l := range snap.ShoppingLists {
		out = append(out, summarizeList(snap, l))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/lists.
func (h *ShoppingListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := policy.CheckListName(req.Name); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l := h.store.AddShoppingList(req.Name)
	writeJSON(w, http.StatusCreated, l)
}

// itemView pairs a list item with its product and current price for the
// list detail screen. Product is nil only if the reference is dangling.
type itemView struct {
	model.ShoppingListItem
	Product     *model.Product `json:"product,omitempty"`
	LatestPrice *float64       `json:"latestPrice,omitempty"`
}

// Get handles GET /api/lists/{id}.
func (h *ShoppingListHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, ok := h.store.ShoppingList(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "list not found"})
		return
	}

	snap := h.store.Snapshot()
	items := make([]itemView, 0, len(l.Items))
	for _, it := range l.Items {
		iv := itemView{ShoppingListItem: it}
		if p, ok := snap.Product(it.ProductID); ok {
			iv.Product = &p
		}
		if pe, ok := derive.LatestPrice(snap, it.ProductID); ok {
			price := pe.Price
			iv.LatestPrice = &price
		}
		items = append(items, iv)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":          l.ID,
		"name":        l.Name,
		"dateCreated": l.DateCreated,
		"items":       items,
		"estimate":    derive.ListEstimate(snap, l),
		"progress":    derive.ListProgress(l),
	})
}

// Rename handles PUT /api/lists/{id}.
func (h *ShoppingListHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.ShoppingList(id); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "list not found"})
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := policy.CheckListName(req.Name); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	h.store.RenameShoppingList(id, req.Name)

	l, _ := h.store.ShoppingList(id)
	writeJSON(w, http.StatusOK, l)
}

// Delete handles DELETE /api/lists/{id}.
func (h *ShoppingListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.store.ShoppingList(id); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "list not found"})
		return
	}

	h.store.DeleteShoppingList(id)
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/lists/{id}/items. Adding a product already on
// the list bumps its quantity instead of creating a second row.
func (h *ShoppingListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")
	if _, ok := h.store.ShoppingList(listID); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "list not found"})
		return
	}

	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if _, ok := h.store.Product(req.ProductID); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown product"})
		return
	}

	item, ok := h.store.AddItemToList(listID, req.ProductID, req.Quantity)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "list not found"})
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// RemoveItem handles DELETE /api/lists/{id}/items/{itemId}.
func (h *ShoppingListHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if !h.store.RemoveItemFromList(r.PathValue("id"), r.PathValue("itemId")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleItem handles POST /api/lists/{id}/items/{itemId}/toggle.
func (h *ShoppingListHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.store.ToggleItemPurchased(r.PathValue("id"), r.PathValue("itemId"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateItemQuantity handles PUT /api/lists/{id}/items/{itemId}/quantity.
// Quantities below one are clamped to one.
func (h *ShoppingListHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	item, ok := h.store.UpdateItemQuantity(r.PathValue("id"), r.PathValue("itemId"), req.Quantity)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}
	writeJSON(w, http.StatusOK, item)
}
