package access

import (
	"bytes"
	"sort"

	"github.com/jmakwana01/NFT-Foundry/identity"
)

// Snapshot is a serializable copy of the role registry state. Member
// lists are sorted so serialization is deterministic.
type Snapshot struct {
	Owner identity.Address            `json:"owner"`
	Roles map[Role][]identity.Address `json:"roles"`
}

// Snapshot returns a deep copy of the registry state.
func (r *Registry) Snapshot() *Snapshot {
	snap := &Snapshot{
		Owner: r.owner,
		Roles: make(map[Role][]identity.Address, len(r.roles)),
	}
	for role, members := range r.roles {
		list := make([]identity.Address, 0, len(members))
		for id := range members {
			list = append(list, id)
		}
		sort.Slice(list, func(i, j int) bool {
			return bytes.Compare(list[i][:], list[j][:]) < 0
		})
		snap.Roles[role] = list
	}
	return snap
}

// FromSnapshot rebuilds a role registry from a snapshot.
func FromSnapshot(snap *Snapshot) *Registry {
	r := &Registry{
		owner: snap.Owner,
		roles: make(map[Role]map[identity.Address]bool, len(snap.Roles)),
	}
	for role, members := range snap.Roles {
		set := make(map[identity.Address]bool, len(members))
		for _, id := range members {
			set[id] = true
		}
		r.roles[role] = set
	}
	return r
}
