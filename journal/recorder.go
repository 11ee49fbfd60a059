package journal

import (
	"context"
	"errors"

	"github.com/jmakwana01/NFT-Foundry/registry"
)

// Recorder bridges a registry event sink into a Store. Events are
// buffered as they are emitted and persisted in order on Flush, using
// the stream version for optimistic concurrency so two recorders on
// the same stream cannot interleave silently.
type Recorder struct {
	store    Store
	streamID string
	version  int
	pending  []*Event
	err      error
}

// NewRecorder creates a recorder for a fresh stream.
func NewRecorder(store Store, streamID string) *Recorder {
	return &Recorder{
		store:    store,
		streamID: streamID,
		version:  -1,
	}
}

// Resume positions the recorder at the current head of an existing
// stream so new events append after what is already stored.
func (r *Recorder) Resume(ctx context.Context) error {
	events, err := r.store.Read(ctx, r.streamID, 0)
	if errors.Is(err, ErrStreamNotFound) {
		r.version = -1
		return nil
	}
	if err != nil {
		return err
	}
	r.version = len(events) - 1
	return nil
}

// Sink returns a registry sink that buffers every emitted event.
func (r *Recorder) Sink() registry.Sink {
	return func(ev registry.Event) {
		encoded, err := NewEvent(r.streamID, ev.EventType(), ev)
		if err != nil {
			if r.err == nil {
				r.err = err
			}
			return
		}
		r.pending = append(r.pending, encoded)
	}
}

// Flush appends the buffered events to the store. On success the
// buffer is cleared and the recorder tracks the new head version.
func (r *Recorder) Flush(ctx context.Context) error {
	if r.err != nil {
		return r.err
	}
	if len(r.pending) == 0 {
		return nil
	}
	version, err := r.store.Append(ctx, r.streamID, r.version, r.pending)
	if err != nil {
		return err
	}
	r.version = version
	r.pending = r.pending[:0]
	return nil
}

// Pending returns the number of buffered, unflushed events.
func (r *Recorder) Pending() int {
	return len(r.pending)
}

// Err returns the first encoding error hit by the sink, if any.
func (r *Recorder) Err() error {
	return r.err
}
