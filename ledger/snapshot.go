package ledger

import (
	"bytes"
	"sort"

	"github.com/jmakwana01/NFT-Foundry/identity"
)

// Snapshot is a serializable copy of the full ledger state. Tokens is
// in mint order; owner lists are rebuilt from it on restore.
type Snapshot struct {
	Tokens    []uint64                                     `json:"tokens"`
	Owners    map[uint64]identity.Address                  `json:"owners"`
	Approvals map[uint64]identity.Address                  `json:"approvals,omitempty"`
	Operators map[identity.Address][]identity.Address      `json:"operators,omitempty"`
}

// Snapshot returns a deep copy of the ledger state.
func (l *Ledger) Snapshot() *Snapshot {
	snap := &Snapshot{
		Tokens:    make([]uint64, len(l.allTokens)),
		Owners:    make(map[uint64]identity.Address, len(l.owners)),
		Approvals: make(map[uint64]identity.Address, len(l.approvals)),
		Operators: make(map[identity.Address][]identity.Address),
	}
	copy(snap.Tokens, l.allTokens)
	for id, owner := range l.owners {
		snap.Owners[id] = owner
	}
	for id, spender := range l.approvals {
		snap.Approvals[id] = spender
	}
	for owner, ops := range l.operators {
		for op, enabled := range ops {
			if enabled {
				snap.Operators[owner] = append(snap.Operators[owner], op)
			}
		}
	}
	// Sorted operator lists keep snapshot serialization deterministic.
	for owner := range snap.Operators {
		list := snap.Operators[owner]
		sort.Slice(list, func(i, j int) bool {
			return bytes.Compare(list[i][:], list[j][:]) < 0
		})
	}
	return snap
}

// FromSnapshot rebuilds a ledger from a snapshot, re-deriving balances
// and the per-owner indices from the token list.
func FromSnapshot(snap *Snapshot) (*Ledger, error) {
	l := New()
	for _, id := range snap.Tokens {
		owner, ok := snap.Owners[id]
		if !ok {
			return nil, ErrNonexistentToken
		}
		if err := l.Insert(id, owner); err != nil {
			return nil, err
		}
	}
	for id, spender := range snap.Approvals {
		if err := l.Approve(id, spender); err != nil {
			return nil, err
		}
	}
	for owner, ops := range snap.Operators {
		for _, op := range ops {
			l.SetOperator(owner, op, true)
		}
	}
	return l, nil
}
