package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store, useful for tests and single-process
// deployments that don't need the log to survive a restart.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string][]ChatLogEntry
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string][]ChatLogEntry)}
}

// CreateEntry implements Store.
func (m *MemStore) CreateEntry(ctx context.Context, room string, entry ChatLogEntry) (ChatLogEntry, error) {
	entry.Room = room
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.DTG.IsZero() {
		entry.DTG = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[room] = append(m.entries[room], entry)
	return entry, nil
}

// RecentEntries implements Store.
func (m *MemStore) RecentEntries(ctx context.Context, room string, limit int) ([]ChatLogEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	log := m.entries[room]
	if limit <= 0 || limit > len(log) {
		limit = len(log)
	}
	start := len(log) - limit
	out := make([]ChatLogEntry, limit)
	copy(out, log[start:])
	return out, nil
}

// Close implements Store. MemStore holds no external resources.
func (m *MemStore) Close(ctx context.Context) error { return nil }
