// Package service wraps a registry in a single processing loop so
// concurrent callers can share it. The registry itself is not safe
// for concurrent use; the service serializes every call through one
// goroutine and, when a journal recorder is attached, flushes
// recorded events after each successful mutation.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/holiman/uint256"

	"github.com/jmakwana01/NFT-Foundry/identity"
	"github.com/jmakwana01/NFT-Foundry/journal"
	"github.com/jmakwana01/NFT-Foundry/registry"
)

// ErrStopped is returned for calls made after the service has stopped.
var ErrStopped = errors.New("service: stopped")

type call struct {
	fn     func(*registry.Registry) error
	mutate bool
	reply  chan error
}

// Service serializes registry access through a single goroutine.
type Service struct {
	reg *registry.Registry
	rec *journal.Recorder

	inbox  chan *call
	stopCh chan struct{}
	done   chan struct{}

	mu      sync.Mutex
	running bool
}

// Option configures a service.
type Option func(*Service)

// WithRecorder attaches a journal recorder. Events from successful
// mutations are flushed to the recorder's store before the call
// returns.
func WithRecorder(rec *journal.Recorder) Option {
	return func(s *Service) { s.rec = rec }
}

// WithInboxSize sets the pending call buffer. The default is 100.
func WithInboxSize(n int) Option {
	return func(s *Service) { s.inbox = make(chan *call, n) }
}

// New creates a service around reg. Call Start before use.
func New(reg *registry.Registry, opts ...Option) *Service {
	s := &Service{
		reg:    reg,
		inbox:  make(chan *call, 100),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rec != nil {
		reg.Subscribe(s.rec.Sink())
	}
	return s
}

// Start begins the processing loop.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("service already running")
	}
	s.running = true
	go s.processLoop()
	return nil
}

// Stop halts the loop and waits for it to drain the in-flight call.
// Pending and future calls fail with ErrStopped.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()
	<-s.done
}

func (s *Service) processLoop() {
	defer close(s.done)
	for {
		select {
		case c := <-s.inbox:
			c.reply <- s.handle(c)
		case <-s.stopCh:
			return
		}
	}
}

func (s *Service) handle(c *call) error {
	err := c.fn(s.reg)
	if err != nil {
		return err
	}
	if c.mutate && s.rec != nil {
		if ferr := s.rec.Flush(context.Background()); ferr != nil {
			return fmt.Errorf("journal flush failed: %w", ferr)
		}
	}
	return nil
}

func (s *Service) submit(ctx context.Context, c *call) error {
	select {
	case s.inbox <- c:
	case <-s.stopCh:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-c.reply:
		return err
	case <-s.stopCh:
		return ErrStopped
	}
}

// Do runs fn on the loop goroutine as a mutation. Results are
// captured by the closure. Recorded events are flushed after fn
// returns nil.
func (s *Service) Do(ctx context.Context, fn func(*registry.Registry) error) error {
	return s.submit(ctx, &call{fn: fn, mutate: true, reply: make(chan error, 1)})
}

// View runs fn on the loop goroutine as a read. No journal flush.
func (s *Service) View(ctx context.Context, fn func(*registry.Registry) error) error {
	return s.submit(ctx, &call{fn: fn, reply: make(chan error, 1)})
}

// PublicMint mints one token to caller at the public price.
func (s *Service) PublicMint(ctx context.Context, caller identity.Address, payment *uint256.Int) (uint64, error) {
	var id uint64
	err := s.Do(ctx, func(r *registry.Registry) error {
		var err error
		id, err = r.PublicMint(caller, caller, payment)
		return err
	})
	return id, err
}

// WhitelistMint mints one token to an allowlisted caller.
func (s *Service) WhitelistMint(ctx context.Context, caller identity.Address, payment *uint256.Int) (uint64, error) {
	var id uint64
	err := s.Do(ctx, func(r *registry.Registry) error {
		var err error
		id, err = r.WhitelistMint(caller, caller, payment)
		return err
	})
	return id, err
}

// TransferFrom moves a token between holders.
func (s *Service) TransferFrom(ctx context.Context, caller, from, to identity.Address, tokenID uint64) error {
	return s.Do(ctx, func(r *registry.Registry) error {
		return r.TransferFrom(caller, from, to, tokenID)
	})
}

// OwnerOf reports the current holder of a token.
func (s *Service) OwnerOf(ctx context.Context, tokenID uint64) (identity.Address, error) {
	var owner identity.Address
	err := s.View(ctx, func(r *registry.Registry) error {
		var err error
		owner, err = r.OwnerOf(tokenID)
		return err
	})
	return owner, err
}

// TotalSupply reports the number of live tokens.
func (s *Service) TotalSupply(ctx context.Context) (uint64, error) {
	var n uint64
	err := s.View(ctx, func(r *registry.Registry) error {
		n = r.TotalSupply()
		return nil
	})
	return n, err
}

// StateRoot reports the content address of the current state.
func (s *Service) StateRoot(ctx context.Context) (string, error) {
	var root string
	err := s.View(ctx, func(r *registry.Registry) error {
		var err error
		root, err = r.StateRoot()
		return err
	})
	return root, err
}
