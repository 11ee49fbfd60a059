package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/holiman/uint256"
	"github.com/jmakwana01/NFT-Foundry/access"
	"github.com/jmakwana01/NFT-Foundry/ledger"
	"github.com/jmakwana01/NFT-Foundry/metadata"
	"github.com/jmakwana01/NFT-Foundry/pause"
	"github.com/jmakwana01/NFT-Foundry/policy"
)

// Snapshot is a serializable copy of the complete registry state. It
// captures everything needed to reconstruct an equivalent registry:
// the runtime-only reentrancy flag and subscribed sinks are excluded.
type Snapshot struct {
	Name     string             `json:"name"`
	Symbol   string             `json:"symbol"`
	Paused   bool               `json:"paused"`
	Treasury string             `json:"treasury"`
	Access   *access.Snapshot   `json:"access"`
	Ledger   *ledger.Snapshot   `json:"ledger"`
	Policy   *policy.Snapshot   `json:"policy"`
	Metadata *metadata.Snapshot `json:"metadata"`
}

// Snapshot returns a deep copy of the registry state.
func (r *Registry) Snapshot() *Snapshot {
	return &Snapshot{
		Name:     r.name,
		Symbol:   r.symbol,
		Paused:   r.breaker.Paused(),
		Treasury: r.treasury.Dec(),
		Access:   r.roles.Snapshot(),
		Ledger:   r.ledger.Snapshot(),
		Policy:   r.policy.Snapshot(),
		Metadata: r.metadata.Snapshot(),
	}
}

// FromSnapshot reconstructs a registry from a snapshot. Sinks are not
// carried over; subscribe again after restoring.
func FromSnapshot(snap *Snapshot) (*Registry, error) {
	treasury, err := uint256.FromDecimal(snap.Treasury)
	if err != nil {
		return nil, err
	}
	led, err := ledger.FromSnapshot(snap.Ledger)
	if err != nil {
		return nil, err
	}
	pol, err := policy.FromSnapshot(snap.Policy)
	if err != nil {
		return nil, err
	}
	r := &Registry{
		name:     snap.Name,
		symbol:   snap.Symbol,
		roles:    access.FromSnapshot(snap.Access),
		ledger:   led,
		policy:   pol,
		metadata: metadata.FromSnapshot(snap.Metadata),
		treasury: treasury,
	}
	if snap.Paused {
		var sw pause.Switch
		if err := sw.Pause(); err != nil {
			return nil, err
		}
		r.breaker = sw
	}
	return r, nil
}

// StateRoot computes a content-addressed identifier for the current
// registry state. Any state change changes the root; two registries
// with equal state have equal roots. Snapshot serialization is
// deterministic (sorted map keys, sorted member lists), so the hash is
// stable across processes.
func (r *Registry) StateRoot() (string, error) {
	data, err := json.Marshal(r.Snapshot())
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "root:" + hex.EncodeToString(sum[:]), nil
}
