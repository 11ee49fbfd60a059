package policy

import (
	"github.com/holiman/uint256"
	"github.com/jmakwana01/NFT-Foundry/identity"
)

// Snapshot is a serializable copy of the policy state.
type Snapshot struct {
	NextID           uint64                      `json:"next_id"`
	MintedBy         map[identity.Address]uint64 `json:"minted_by,omitempty"`
	Price            string                      `json:"price"`
	PublicEnabled    bool                        `json:"public_enabled"`
	WhitelistEnabled bool                        `json:"whitelist_enabled"`
	Whitelist        map[identity.Address]bool   `json:"whitelist,omitempty"`
}

// Snapshot returns a deep copy of the policy state. The price is
// rendered in decimal so snapshots stay readable.
func (p *Policy) Snapshot() *Snapshot {
	snap := &Snapshot{
		NextID:           p.nextID,
		MintedBy:         make(map[identity.Address]uint64, len(p.mintedBy)),
		Price:            p.price.Dec(),
		PublicEnabled:    p.publicEnabled,
		WhitelistEnabled: p.whitelistEnabled,
		Whitelist:        make(map[identity.Address]bool, len(p.whitelist)),
	}
	for id, n := range p.mintedBy {
		snap.MintedBy[id] = n
	}
	for id := range p.whitelist {
		snap.Whitelist[id] = true
	}
	return snap
}

// FromSnapshot rebuilds a policy from a snapshot.
func FromSnapshot(snap *Snapshot) (*Policy, error) {
	price, err := uint256.FromDecimal(snap.Price)
	if err != nil {
		return nil, err
	}
	p := New()
	p.nextID = snap.NextID
	p.price = price
	p.publicEnabled = snap.PublicEnabled
	p.whitelistEnabled = snap.WhitelistEnabled
	for id, n := range snap.MintedBy {
		p.mintedBy[id] = n
	}
	for id, ok := range snap.Whitelist {
		if ok {
			p.whitelist[id] = true
		}
	}
	return p, nil
}
