package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/pricetrack/internal/backup"
	"github.com/dukerupert/pricetrack/internal/store"
)

type BackupHandler struct {
	store   *store.Store
	manager *backup.Manager
	logger  *slog.Logger
}

func NewBackupHandler(s *store.Store, m *backup.Manager, logger *slog.Logger) *BackupHandler {
	return &BackupHandler{store: s, manager: m, logger: logger}
}

// Export handles POST /api/backup/export: writes an encrypted snapshot file
// and returns its path.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	path, err := h.manager.Export(h.store.Snapshot())
	if err != nil {
		h.logger.Error("backup export failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "export failed"})
		return
	}

	h.logger.Info("backup exported", "path", path)
	writeJSON(w, http.StatusCreated, map[string]string{"path": path})
}

// Import handles POST /api/backup/import. With no path in the body the most
// recent backup file is used. The restored snapshot replaces all current
// state.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if r.Body != nil {
		// Body is optional; decode errors on an empty body are fine.
		json.NewDecoder(r.Body).Decode(&req)
	}

	path := req.Path
	if path == "" {
		latest, err := h.manager.Latest()
		if err != nil {
			h.logger.Error("list backups failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not list backups"})
			return
		}
		if latest == "" {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no backup files found"})
			return
		}
		path = latest
	}

	snap, err := h.manager.Import(path)
	if err != nil {
		h.logger.Error("backup import failed", "path", path, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "import failed: " + err.Error()})
		return
	}

	h.store.Replace(snap)
	h.logger.Info("backup restored", "path", path)
	writeJSON(w, http.StatusOK, map[string]string{"restored": path})
}
