package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a Store backed by a SQLite database. Use ":memory:"
// as the path for an ephemeral store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a SQLite-backed store at
// the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// The driver opens lazily; force schema creation now so a bad path
	// fails at construction.
	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		stream_id TEXT NOT NULL,
		version   INTEGER NOT NULL,
		id        TEXT NOT NULL,
		type      TEXT NOT NULL,
		data      TEXT,
		timestamp TEXT NOT NULL,
		PRIMARY KEY (stream_id, version)
	);

	CREATE TABLE IF NOT EXISTS snapshots (
		stream_id TEXT PRIMARY KEY,
		version   INTEGER NOT NULL,
		data      BLOB NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append implements Store.
func (s *SQLiteStore) Append(ctx context.Context, streamID string, expectedVersion int, events []*Event) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	current := -1
	var head sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT MAX(version) FROM events WHERE stream_id = ?`, streamID).Scan(&head)
	if err != nil {
		return 0, err
	}
	if head.Valid {
		current = int(head.Int64)
	}
	if expectedVersion != current {
		return current, ErrVersionConflict
	}

	version := current
	for _, ev := range events {
		version++
		data := ""
		if ev.Data != nil {
			data = string(ev.Data)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO events (stream_id, version, id, type, data, timestamp)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			streamID, version, ev.ID, ev.Type, data,
			ev.Timestamp.Format(time.RFC3339Nano))
		if err != nil {
			return 0, err
		}
		ev.StreamID = streamID
		ev.Version = version
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return version, nil
}

// Read implements Store.
func (s *SQLiteStore) Read(ctx context.Context, streamID string, fromVersion int) ([]*Event, error) {
	if fromVersion < 0 {
		fromVersion = 0
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT version, id, type, data, timestamp FROM events
		 WHERE stream_id = ? AND version >= ? ORDER BY version`,
		streamID, fromVersion)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		ev := &Event{StreamID: streamID}
		var data, ts string
		if err := rows.Scan(&ev.Version, &ev.ID, &ev.Type, &data, &ts); err != nil {
			return nil, err
		}
		if data != "" {
			ev.Data = json.RawMessage(data)
		}
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		ev.Timestamp = parsed
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if events == nil && fromVersion == 0 {
		// Distinguish an empty stream from one that never existed.
		var n int
		if err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM events WHERE stream_id = ?`, streamID).Scan(&n); err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrStreamNotFound
		}
	}
	return events, nil
}

// SaveSnapshot implements SnapshotStore.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, streamID string, version int, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (stream_id, version, data) VALUES (?, ?, ?)
		 ON CONFLICT(stream_id) DO UPDATE SET version = excluded.version, data = excluded.data`,
		streamID, version, data)
	return err
}

// LoadSnapshot implements SnapshotStore.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context, streamID string) ([]byte, int, error) {
	var version int
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT version, data FROM snapshots WHERE stream_id = ?`, streamID).
		Scan(&version, &data)
	if err == sql.ErrNoRows {
		return nil, 0, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	return data, version, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
