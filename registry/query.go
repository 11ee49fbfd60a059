package registry

import (
	"github.com/holiman/uint256"
	"github.com/jmakwana01/NFT-Foundry/access"
	"github.com/jmakwana01/NFT-Foundry/identity"
	"github.com/jmakwana01/NFT-Foundry/ledger"
)

// Name returns the collection display name.
func (r *Registry) Name() string { return r.name }

// Symbol returns the collection symbol code.
func (r *Registry) Symbol() string { return r.symbol }

// Owner returns the distinguished owner identity.
func (r *Registry) Owner() identity.Address { return r.roles.Owner() }

// Paused reports whether the circuit breaker is engaged.
func (r *Registry) Paused() bool { return r.breaker.Paused() }

// HasRole reports whether id holds role.
func (r *Registry) HasRole(role access.Role, id identity.Address) bool {
	return r.roles.HasRole(role, id)
}

// OwnerOf returns the owner of a live token.
func (r *Registry) OwnerOf(id uint64) (identity.Address, error) {
	return r.ledger.OwnerOf(id)
}

// BalanceOf returns the number of live tokens owned by id.
func (r *Registry) BalanceOf(id identity.Address) uint64 {
	return r.ledger.BalanceOf(id)
}

// TotalSupply returns the number of live tokens. With no burn path it
// always equals TotalMinted.
func (r *Registry) TotalSupply() uint64 {
	return r.ledger.TotalSupply()
}

// TotalMinted returns the number of ids ever issued.
func (r *Registry) TotalMinted() uint64 {
	return r.policy.TotalMinted()
}

// CurrentTokenID returns the id the next successful mint will receive.
func (r *Registry) CurrentTokenID() uint64 {
	return r.policy.NextID()
}

// TokenByIndex returns the i-th token in mint order.
func (r *Registry) TokenByIndex(i uint64) (uint64, error) {
	return r.ledger.TokenByIndex(i)
}

// TokenOfOwnerByIndex returns the i-th token of owner.
func (r *Registry) TokenOfOwnerByIndex(owner identity.Address, i uint64) (uint64, error) {
	return r.ledger.TokenOfOwnerByIndex(owner, i)
}

// TokenURI returns the locator for a live token. The existence check
// runs before resolution.
func (r *Registry) TokenURI(id uint64) (string, error) {
	if !r.ledger.Exists(id) {
		return "", ledger.ErrNonexistentToken
	}
	return r.metadata.ResolveURI(id), nil
}

// BaseURI returns the default locator prefix.
func (r *Registry) BaseURI() string {
	return r.metadata.BaseURI()
}

// RoyaltyInfo returns the royalty recipient and amount owed on a sale
// of id at salePrice. The id is not checked for existence.
func (r *Registry) RoyaltyInfo(id uint64, salePrice *uint256.Int) (identity.Address, *uint256.Int) {
	return r.metadata.RoyaltyInfo(id, salePrice)
}

// MintPrice returns a copy of the current mint price.
func (r *Registry) MintPrice() *uint256.Int {
	return r.policy.Price()
}

// PublicMintEnabled reports whether the public mint path is open.
func (r *Registry) PublicMintEnabled() bool {
	return r.policy.PublicMintEnabled()
}

// WhitelistMintEnabled reports whether the whitelist mint path is open.
func (r *Registry) WhitelistMintEnabled() bool {
	return r.policy.WhitelistMintEnabled()
}

// IsWhitelisted reports whether id is on the whitelist.
func (r *Registry) IsWhitelisted(id identity.Address) bool {
	return r.policy.IsWhitelisted(id)
}

// MintedBy returns how many capped-path mints id has performed.
func (r *Registry) MintedBy(id identity.Address) uint64 {
	return r.policy.MintedBy(id)
}

// GetApproved returns the single approved identity for id, or the
// zero address.
func (r *Registry) GetApproved(id uint64) identity.Address {
	return r.ledger.ApprovedFor(id)
}

// IsApprovedForAll reports whether operator may move all of owner's
// tokens.
func (r *Registry) IsApprovedForAll(owner, operator identity.Address) bool {
	return r.ledger.IsOperator(owner, operator)
}

// Treasury returns a copy of the held balance.
func (r *Registry) Treasury() *uint256.Int {
	return new(uint256.Int).Set(r.treasury)
}
