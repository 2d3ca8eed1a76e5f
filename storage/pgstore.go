package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ddlChatLog = `
CREATE TABLE IF NOT EXISTS chat_log (
	id         UUID         PRIMARY KEY,
	room       TEXT         NOT NULL,
	source     TEXT         NOT NULL DEFAULT '',
	visibility BOOLEAN      NOT NULL DEFAULT true,
	dtg        TIMESTAMPTZ  NOT NULL DEFAULT now(),
	contents   TEXT         NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_chat_log_room_dtg
	ON chat_log (room, dtg);
`

// PgStore is a PostgreSQL-backed Store, for deployments whose chat log needs
// to survive a server restart or be shared across server instances.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore connects to the PostgreSQL database at dsn and ensures the
// chat_log table exists.
func NewPgStore(ctx context.Context, dsn string) (*PgStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage: connect: %w", err)
	}

	s := &PgStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PgStore) migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, ddlChatLog); err != nil {
		return fmt.Errorf("storage: migrate: %w", err)
	}
	return nil
}

// CreateEntry implements Store.
func (s *PgStore) CreateEntry(ctx context.Context, room string, entry ChatLogEntry) (ChatLogEntry, error) {
	entry.Room = room
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	const q = `
INSERT INTO chat_log (id, room, source, visibility, dtg, contents)
VALUES ($1, $2, $3, $4, COALESCE(NULLIF($5, '0001-01-01 00:00:00+00'::timestamptz), now()), $6)
RETURNING dtg`

	err := s.pool.QueryRow(ctx, q,
		entry.ID, entry.Room, entry.Source, entry.Visibility, entry.DTG, entry.Contents,
	).Scan(&entry.DTG)
	if err != nil {
		return ChatLogEntry{}, fmt.Errorf("storage: append: %w", err)
	}
	return entry, nil
}

// RecentEntries implements Store.
func (s *PgStore) RecentEntries(ctx context.Context, room string, limit int) ([]ChatLogEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	const q = `
SELECT id, room, source, visibility, dtg, contents
FROM chat_log
WHERE room = $1
ORDER BY dtg DESC
LIMIT $2`

	rows, err := s.pool.Query(ctx, q, room, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: recent: %w", err)
	}
	defer rows.Close()

	var entries []ChatLogEntry
	for rows.Next() {
		var e ChatLogEntry
		if err := rows.Scan(&e.ID, &e.Room, &e.Source, &e.Visibility, &e.DTG, &e.Contents); err != nil {
			return nil, fmt.Errorf("storage: recent scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// reverse: query is newest-first, Store.RecentEntries's contract is oldest-first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Close implements Store.
func (s *PgStore) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}
