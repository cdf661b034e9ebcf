// Package persist serializes the store snapshot to a single named slot in
// the SQLite database and restores it on startup.
package persist

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dukerupert/pricetrack/internal/model"
)

// SlotName is the fixed storage key for the application snapshot. Changing it
// orphans previously stored data.
const SlotName = "price-tracker-storage"

// Slot reads and writes one named snapshot blob. It implements
// store.Persister.
type Slot struct {
	db   *sql.DB
	name string
}

// NewSlot creates a Slot bound to the default name.
func NewSlot(db *sql.DB) *Slot {
	return &Slot{db: db, name: SlotName}
}

// Load returns the stored snapshot. The second return is false when no
// snapshot has been stored yet; that is not an error.
func (s *Slot) Load() (model.Snapshot, bool, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM snapshots WHERE name = ?`, s.name).Scan(&data)
	if err == sql.ErrNoRows {
		return model.Snapshot{}, false, nil
	}
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("load snapshot: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, true, nil
}

// Save upserts the snapshot into the slot.
func (s *Slot) Save(snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO snapshots (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		s.name, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
