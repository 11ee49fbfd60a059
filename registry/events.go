package registry

import (
	"github.com/jmakwana01/NFT-Foundry/access"
	"github.com/jmakwana01/NFT-Foundry/identity"
)

// Event is a notification of a successful state mutation. Events are
// delivered to subscribed sinks exactly once per successful call,
// after the mutation and while the reentrancy lock is still held.
type Event interface {
	// EventType returns the stable name of the event kind.
	EventType() string
}

// Sink receives registry events.
type Sink func(Event)

// Subscribe registers a sink for all future events.
func (r *Registry) Subscribe(sink Sink) {
	r.sinks = append(r.sinks, sink)
}

// emit delivers an event to every sink in subscription order.
func (r *Registry) emit(ev Event) {
	for _, sink := range r.sinks {
		sink(ev)
	}
}

// TransferEvent records an ownership change, including mints (From is
// the zero address on mint).
type TransferEvent struct {
	From    identity.Address `json:"from"`
	To      identity.Address `json:"to"`
	TokenID uint64           `json:"token_id"`
}

func (TransferEvent) EventType() string { return "Transfer" }

// ApprovalEvent records a single-token approval.
type ApprovalEvent struct {
	Owner    identity.Address `json:"owner"`
	Approved identity.Address `json:"approved"`
	TokenID  uint64           `json:"token_id"`
}

func (ApprovalEvent) EventType() string { return "Approval" }

// ApprovalForAllEvent records an operator approval change.
type ApprovalForAllEvent struct {
	Owner    identity.Address `json:"owner"`
	Operator identity.Address `json:"operator"`
	Approved bool             `json:"approved"`
}

func (ApprovalForAllEvent) EventType() string { return "ApprovalForAll" }

// BaseURIChangedEvent records a base locator change.
type BaseURIChangedEvent struct {
	BaseURI string `json:"base_uri"`
}

func (BaseURIChangedEvent) EventType() string { return "BaseURIChanged" }

// PriceChangedEvent records a mint price change. The price is in
// decimal form of the smallest currency unit.
type PriceChangedEvent struct {
	Price string `json:"price"`
}

func (PriceChangedEvent) EventType() string { return "PriceChanged" }

// MintToggledEvent records a mint-path toggle change.
type MintToggledEvent struct {
	// Path is "public" or "whitelist".
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
}

func (MintToggledEvent) EventType() string { return "MintToggled" }

// WhitelistChangedEvent records a batch whitelist update.
type WhitelistChangedEvent struct {
	Addresses []identity.Address `json:"addresses"`
	Added     bool               `json:"added"`
}

func (WhitelistChangedEvent) EventType() string { return "WhitelistChanged" }

// RoyaltyChangedEvent records a royalty policy change.
type RoyaltyChangedEvent struct {
	Recipient identity.Address `json:"recipient"`
	Bps       uint64           `json:"bps"`
}

func (RoyaltyChangedEvent) EventType() string { return "RoyaltyChanged" }

// PausedEvent records the circuit breaker engaging.
type PausedEvent struct {
	By identity.Address `json:"by"`
}

func (PausedEvent) EventType() string { return "Paused" }

// UnpausedEvent records the circuit breaker releasing.
type UnpausedEvent struct {
	By identity.Address `json:"by"`
}

func (UnpausedEvent) EventType() string { return "Unpaused" }

// RoleGrantedEvent records a role grant.
type RoleGrantedEvent struct {
	Role access.Role      `json:"role"`
	To   identity.Address `json:"to"`
	By   identity.Address `json:"by"`
}

func (RoleGrantedEvent) EventType() string { return "RoleGranted" }

// RoleRevokedEvent records a role revocation.
type RoleRevokedEvent struct {
	Role access.Role      `json:"role"`
	From identity.Address `json:"from"`
	By   identity.Address `json:"by"`
}

func (RoleRevokedEvent) EventType() string { return "RoleRevoked" }

// WithdrawalEvent records a successful treasury withdrawal.
type WithdrawalEvent struct {
	To identity.Address `json:"to"`
	// Amount is the decimal form of the withdrawn balance.
	Amount string `json:"amount"`
}

func (WithdrawalEvent) EventType() string { return "Withdrawal" }
