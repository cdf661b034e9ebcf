package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dukerupert/pricetrack/internal/backup"
	"github.com/dukerupert/pricetrack/internal/database"
	"github.com/dukerupert/pricetrack/internal/logging"
	"github.com/dukerupert/pricetrack/internal/persist"
	"github.com/dukerupert/pricetrack/internal/server"
	"github.com/dukerupert/pricetrack/internal/store"
	"github.com/dukerupert/pricetrack/internal/websocket"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logger := logging.Setup(getEnv("PRICETRACK_LOG_LEVEL", "info"))

	dbPath := getEnv("PRICETRACK_DB_PATH", "pricetrack.db")
	db, err := database.Open(dbPath)
	if err != nil {
		logger.Error("open database", "path", dbPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slot := persist.NewSlot(db)

	// A corrupt or unreadable snapshot must not keep the app from starting;
	// fall back to the sample dataset and log what happened.
	initial := store.Seed()
	snap, found, err := slot.Load()
	switch {
	case err != nil:
		logger.Error("load snapshot, starting from sample data", "error", err)
	case found:
		initial = snap
		logger.Info("snapshot loaded", "slot", persist.SlotName)
	default:
		logger.Info("no stored snapshot, starting from sample data")
	}

	st := store.New(initial,
		store.WithPersister(slot),
		store.WithLogger(logger),
	)

	hub := websocket.NewHub(logger)

	var backups *backup.Manager
	if dir := os.Getenv("PRICETRACK_BACKUP_DIR"); dir != "" {
		backups = backup.NewManager(dir, os.Getenv("PRICETRACK_BACKUP_PASSPHRASE"))
		logger.Info("backups enabled", "dir", dir)
	}

	srv := server.New(st, hub, backups, logger)

	port := getEnv("PRICETRACK_PORT", "8080")
	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}

	logger.Info("server stopped")
}
