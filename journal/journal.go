// Package journal persists the registry's event stream. It provides an
// append-only store with optimistic stream versioning, in-memory and
// SQLite backends, a recorder that bridges registry event sinks into a
// store, and JSONL export for offline analysis.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrVersionConflict is returned when an append names an expected
	// version that is no longer the stream head.
	ErrVersionConflict = errors.New("journal: version conflict")

	// ErrStreamNotFound is returned when reading a stream with no events.
	ErrStreamNotFound = errors.New("journal: stream not found")

	// ErrSnapshotNotFound is returned when no snapshot is stored for a
	// stream.
	ErrSnapshotNotFound = errors.New("journal: snapshot not found")
)

// Event is a persisted registry notification.
type Event struct {
	// ID is a unique event identifier.
	ID string `json:"id"`

	// StreamID names the registry instance the event belongs to.
	StreamID string `json:"stream_id"`

	// Version is the position of the event in its stream, assigned on
	// append starting at 0.
	Version int `json:"version"`

	// Type is the event kind name (Transfer, Approval, ...).
	Type string `json:"type"`

	// Data is the JSON-encoded event payload.
	Data json.RawMessage `json:"data,omitempty"`

	// Timestamp records when the event was created.
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent creates an event with a fresh id and the payload encoded as
// JSON.
func NewEvent(streamID, eventType string, payload any) (*Event, error) {
	var data json.RawMessage
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		data = encoded
	}
	return &Event{
		ID:        uuid.New().String(),
		StreamID:  streamID,
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Decode unmarshals the event payload into v.
func (e *Event) Decode(v any) error {
	if e.Data == nil {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// Store is an append-only event store with optimistic concurrency.
type Store interface {
	// Append adds events to a stream. expectedVersion is the current
	// head version of the stream, or -1 for a new stream; a mismatch
	// returns ErrVersionConflict. Returns the new head version.
	Append(ctx context.Context, streamID string, expectedVersion int, events []*Event) (int, error)

	// Read returns the events of a stream from the given version on,
	// in version order.
	Read(ctx context.Context, streamID string, fromVersion int) ([]*Event, error)

	// Close releases store resources.
	Close() error
}

// SnapshotStore persists point-in-time registry snapshots alongside
// the event stream.
type SnapshotStore interface {
	// SaveSnapshot stores data as the snapshot for a stream at the given
	// stream version, replacing any previous snapshot.
	SaveSnapshot(ctx context.Context, streamID string, version int, data []byte) error

	// LoadSnapshot returns the stored snapshot and its version.
	LoadSnapshot(ctx context.Context, streamID string) ([]byte, int, error)
}
