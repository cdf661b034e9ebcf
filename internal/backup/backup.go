// Package backup exports and imports encrypted snapshot files, so a user can
// move their data between devices without any sync service.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dukerupert/pricetrack/internal/model"
)

// Manager writes encrypted snapshot exports into a directory and reads them
// back.
type Manager struct {
	dir        string
	passphrase string
	now        func() time.Time
}

// NewManager creates a Manager. The directory is created on first export.
func NewManager(dir, passphrase string) *Manager {
	return &Manager{dir: dir, passphrase: passphrase, now: time.Now}
}

// Export encrypts the snapshot and writes it to a timestamped file in the
// backup directory, returning the file path.
func (m *Manager) Export(snap model.Snapshot) (string, error) {
	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	plaintext, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	data, err := Encrypt(plaintext, m.passphrase)
	if err != nil {
		return "", fmt.Errorf("encrypt snapshot: %w", err)
	}

	name := fmt.Sprintf("pricetrack-%s.bak", m.now().UTC().Format("20060102-150405"))
	path := filepath.Join(m.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}

// Import reads and decrypts a backup file into a snapshot.
func (m *Manager) Import(path string) (model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read backup: %w", err)
	}

	plaintext, err := Decrypt(data, m.passphrase)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("decrypt backup: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(plaintext, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode backup: %w", err)
	}
	return snap, nil
}

// Latest returns the newest backup file in the directory, or "" when none
// exist.
func (m *Manager) Latest() (string, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read backup dir: %w", err)
	}

	latest := ""
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".bak" {
			continue
		}
		// Timestamped names sort lexicographically.
		if e.Name() > latest {
			latest = e.Name()
		}
	}
	if latest == "" {
		return "", nil
	}
	return filepath.Join(m.dir, latest), nil
}
