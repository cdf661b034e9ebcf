// Package server wires the store, handlers, and websocket hub into an HTTP
// surface.
package server

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/pricetrack/internal/backup"
	"github.com/dukerupert/pricetrack/internal/handler"
	"github.com/dukerupert/pricetrack/internal/middleware"
	"github.com/dukerupert/pricetrack/internal/model"
	"github.com/dukerupert/pricetrack/internal/store"
	"github.com/dukerupert/pricetrack/internal/websocket"
)

type Server struct {
	store  *store.Store
	hub    *websocket.Hub
	logger *slog.Logger

	products *handler.ProductHandler
	prices   *handler.PriceHandler
	vendors  *handler.VendorHandler
	lists    *handler.ShoppingListHandler
	scans    *handler.ScanHandler
	backups  *handler.BackupHandler
}

// New builds a Server. Every store mutation is broadcast to websocket
// clients. The backup manager may be nil, in which case the backup routes
// are not registered.
func New(s *store.Store, hub *websocket.Hub, backups *backup.Manager, logger *slog.Logger) *Server {
	srv := &Server{
		store:    s,
		hub:      hub,
		logger:   logger,
		products: handler.NewProductHandler(s, logger),
		prices:   handler.NewPriceHandler(s, logger),
		vendors:  handler.NewVendorHandler(s, logger),
		lists:    handler.NewShoppingListHandler(s, logger),
		scans:    handler.NewScanHandler(s, logger),
	}
	if backups != nil {
		srv.backups = handler.NewBackupHandler(s, backups, logger)
	}

	s.Subscribe(func(ev store.Event, _ model.Snapshot) {
		hub.Broadcast(websocket.NewMessage(ev.Entity, ev.Action, ev.ID))
	})

	return srv
}

// Router returns the HTTP handler with all routes registered.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.Handle("GET /ws", websocket.HandleWebSocket(s.hub))

	mux.HandleFunc("GET /api/products", s.products.List)
	mux.HandleFunc("POST /api/products", s.products.Create)
	mux.HandleFunc("GET /api/products/barcode/{code}", s.products.GetByBarcode)
	mux.HandleFunc("GET /api/products/{id}", s.products.Get)
	mux.HandleFunc("PUT /api/products/{id}", s.products.Update)
	mux.HandleFunc("DELETE /api/products/{id}", s.products.Delete)

	mux.HandleFunc("POST /api/prices", s.prices.Create)
	mux.HandleFunc("PUT /api/prices/{id}", s.prices.Update)
	mux.HandleFunc("DELETE /api/prices/{id}", s.prices.Delete)

	mux.HandleFunc("GET /api/vendors", s.vendors.List)
	mux.HandleFunc("POST /api/vendors", s.vendors.Create)
	mux.HandleFunc("PUT /api/vendors/{id}", s.vendors.Update)
	mux.HandleFunc("DELETE /api/vendors/{id}", s.vendors.Delete)

	mux.HandleFunc("GET /api/lists", s.lists.List)
	mux.HandleFunc("POST /api/lists", s.lists.Create)
	mux.HandleFunc("GET /api/lists/{id}", s.lists.Get)
	mux.HandleFunc("PUT /api/lists/{id}", s.lists.Rename)
	mux.HandleFunc("DELETE /api/lists/{id}", s.lists.Delete)
	mux.HandleFunc("POST /api/lists/{id}/items", s.lists.AddItem)
	mux.HandleFunc("DELETE /api/lists/{id}/items/{itemId}", s.lists.RemoveItem)
	mux.HandleFunc("POST /api/lists/{id}/items/{itemId}/toggle", s.lists.ToggleItem)
	mux.HandleFunc("PUT /api/lists/{id}/items/{itemId}/quantity", s.lists.UpdateItemQuantity)

	mux.HandleFunc("GET /api/scans", s.scans.List)
	mux.HandleFunc("POST /api/scans", s.scans.Record)

	if s.backups != nil {
		mux.HandleFunc("POST /api/backup/export", s.backups.Export)
		mux.HandleFunc("POST /api/backup/import", s.backups.Import)
	}

	return middleware.RequestLogger(s.logger)(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
