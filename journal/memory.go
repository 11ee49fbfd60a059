package journal

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store, useful for tests and for callers
// that only want live subscription without persistence.
type MemoryStore struct {
	mu        sync.RWMutex
	streams   map[string][]*Event
	snapshots map[string]memorySnapshot
}

type memorySnapshot struct {
	version int
	data    []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		streams:   make(map[string][]*Event),
		snapshots: make(map[string]memorySnapshot),
	}
}

// Append implements Store.
func (s *MemoryStore) Append(ctx context.Context, streamID string, expectedVersion int, events []*Event) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stream := s.streams[streamID]
	current := len(stream) - 1
	if expectedVersion != current {
		return current, ErrVersionConflict
	}
	for _, ev := range events {
		copied := *ev
		copied.StreamID = streamID
		copied.Version = len(stream)
		stream = append(stream, &copied)
	}
	s.streams[streamID] = stream
	return len(stream) - 1, nil
}

// Read implements Store.
func (s *MemoryStore) Read(ctx context.Context, streamID string, fromVersion int) ([]*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stream, ok := s.streams[streamID]
	if !ok {
		return nil, ErrStreamNotFound
	}
	if fromVersion < 0 {
		fromVersion = 0
	}
	if fromVersion >= len(stream) {
		return nil, nil
	}
	out := make([]*Event, len(stream)-fromVersion)
	copy(out, stream[fromVersion:])
	return out, nil
}

// SaveSnapshot implements SnapshotStore.
func (s *MemoryStore) SaveSnapshot(ctx context.Context, streamID string, version int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	s.snapshots[streamID] = memorySnapshot{version: version, data: copied}
	return nil
}

// LoadSnapshot implements SnapshotStore.
func (s *MemoryStore) LoadSnapshot(ctx context.Context, streamID string) ([]byte, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snapshots[streamID]
	if !ok {
		return nil, 0, ErrSnapshotNotFound
	}
	out := make([]byte, len(snap.data))
	copy(out, snap.data)
	return out, snap.version, nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
