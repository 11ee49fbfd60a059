// Package access implements the capability-role registry that gates
// privileged registry operations.
//
// Three roles exist: Admin, Minter, and Pauser. Roles do not nest or
// inherit; membership is a flat (role, identity) mapping. A separate
// distinguished owner identity covers owner-only operations and is not
// part of the role mapping.
package access

import (
	"errors"

	"github.com/jmakwana01/NFT-Foundry/identity"
)

// Role names a grantable capability.
type Role string

const (
	// RoleAdmin administers all roles, including itself.
	RoleAdmin Role = "ADMIN"
	// RoleMinter may call the gated mint paths.
	RoleMinter Role = "MINTER"
	// RolePauser may pause and unpause the registry.
	RolePauser Role = "PAUSER"
)

// ErrUnauthorized is returned when the caller lacks the role or
// ownership required for an operation.
var ErrUnauthorized = errors.New("access: unauthorized")

// Registry maps roles to their holders and tracks the distinguished
// owner identity.
type Registry struct {
	owner identity.Address
	roles map[Role]map[identity.Address]bool
}

// NewRegistry creates a role registry and grants the initial owner the
// Admin, Minter, and Pauser roles. This is the only point where roles
// are assigned without an Admin caller.
func NewRegistry(owner identity.Address) *Registry {
	r := &Registry{
		owner: owner,
		roles: make(map[Role]map[identity.Address]bool),
	}
	for _, role := range []Role{RoleAdmin, RoleMinter, RolePauser} {
		r.roles[role] = map[identity.Address]bool{owner: true}
	}
	return r
}

// HasRole reports whether id holds role. It is a pure predicate and
// never fails.
func (r *Registry) HasRole(role Role, id identity.Address) bool {
	return r.roles[role][id]
}

// Owner returns the distinguished owner identity.
func (r *Registry) Owner() identity.Address {
	return r.owner
}

// IsOwner reports whether id is the distinguished owner.
func (r *Registry) IsOwner(id identity.Address) bool {
	return id == r.owner
}

// Grant adds id to role. The caller must hold Admin.
func (r *Registry) Grant(caller identity.Address, role Role, id identity.Address) error {
	if !r.HasRole(RoleAdmin, caller) {
		return ErrUnauthorized
	}
	members, ok := r.roles[role]
	if !ok {
		members = make(map[identity.Address]bool)
		r.roles[role] = members
	}
	members[id] = true
	return nil
}

// Revoke removes id from role. The caller must hold Admin.
func (r *Registry) Revoke(caller identity.Address, role Role, id identity.Address) error {
	if !r.HasRole(RoleAdmin, caller) {
		return ErrUnauthorized
	}
	delete(r.roles[role], id)
	return nil
}

// Members returns the holders of role in unspecified order.
func (r *Registry) Members(role Role) []identity.Address {
	members := make([]identity.Address, 0, len(r.roles[role]))
	for id := range r.roles[role] {
		members = append(members, id)
	}
	return members
}
