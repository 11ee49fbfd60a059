package metadata

import "github.com/jmakwana01/NFT-Foundry/identity"

// Snapshot is a serializable copy of the metadata state.
type Snapshot struct {
	BaseURI          string            `json:"base_uri"`
	Overrides        map[uint64]string `json:"overrides,omitempty"`
	RoyaltyRecipient identity.Address  `json:"royalty_recipient"`
	RoyaltyBps       uint64            `json:"royalty_bps"`
}

// Snapshot returns a deep copy of the store state.
func (s *Store) Snapshot() *Snapshot {
	snap := &Snapshot{
		BaseURI:          s.baseURI,
		Overrides:        make(map[uint64]string, len(s.overrides)),
		RoyaltyRecipient: s.royaltyRecipient,
		RoyaltyBps:       s.royaltyBps,
	}
	for id, uri := range s.overrides {
		snap.Overrides[id] = uri
	}
	return snap
}

// FromSnapshot rebuilds a store from a snapshot.
func FromSnapshot(snap *Snapshot) *Store {
	s := New(snap.BaseURI, snap.RoyaltyRecipient)
	s.royaltyBps = snap.RoyaltyBps
	for id, uri := range snap.Overrides {
		s.overrides[id] = uri
	}
	return s
}
