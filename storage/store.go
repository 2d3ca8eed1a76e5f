/*
Package storage persists the chat log entries a dicechat room produces:
every rendered message, who sent it, and where.
*/
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound reports a lookup that found no matching entry. No Store
// method in this package returns it: RecentEntries reports a room with no
// entries as an empty result.
var ErrNotFound = errors.New("storage: entry not found")

// ChatLogEntry is one rendered chat message persisted to a room's history.
// Visibility is true when every player in the room can see the entry, false
// when it's restricted to the GM (mirroring the original's shared/GM-only
// distinction).
type ChatLogEntry struct {
	ID         uuid.UUID
	Room       string
	Source     string
	Visibility bool
	DTG        time.Time
	Contents   string
}

// Store persists and retrieves a room's chat log.
type Store interface {
	// CreateEntry writes entry to room's log, assigning an ID and timestamp
	// if unset, and returns the stored entry.
	CreateEntry(ctx context.Context, room string, entry ChatLogEntry) (ChatLogEntry, error)

	// RecentEntries returns the most recent limit entries logged to room,
	// oldest first.
	RecentEntries(ctx context.Context, room string, limit int) ([]ChatLogEntry, error)

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}
