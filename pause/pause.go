// Package pause implements the two-state circuit breaker that disables
// all mutating registry operations while engaged.
//
// The switch cycles Active -> Paused -> Active. Transitions are not
// idempotent: pausing an already-paused switch is an error, as is
// resuming an active one.
package pause

import "errors"

var (
	// ErrAlreadyPaused is returned when pausing an already paused switch.
	ErrAlreadyPaused = errors.New("pause: already paused")

	// ErrAlreadyActive is returned when resuming an already active switch.
	ErrAlreadyActive = errors.New("pause: already active")
)

// Switch is the pause circuit breaker. The zero value is Active.
type Switch struct {
	paused bool
}

// Paused reports whether the switch is engaged.
func (s *Switch) Paused() bool {
	return s.paused
}

// Pause engages the switch. Fails if already paused.
func (s *Switch) Pause() error {
	if s.paused {
		return ErrAlreadyPaused
	}
	s.paused = true
	return nil
}

// Unpause releases the switch. Fails if already active.
func (s *Switch) Unpause() error {
	if !s.paused {
		return ErrAlreadyActive
	}
	s.paused = false
	return nil
}
