package registry

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/jmakwana01/NFT-Foundry/access"
	"github.com/jmakwana01/NFT-Foundry/identity"
)

// TransferFunc is the external mechanism Withdraw uses to move funds.
// A non-nil error reports that the recipient rejected the transfer.
type TransferFunc func(to identity.Address, amount *uint256.Int) error

// SetBaseURI replaces the default token locator prefix. Admin only.
func (r *Registry) SetBaseURI(caller identity.Address, uri string) error {
	if err := r.requireRole(access.RoleAdmin, caller); err != nil {
		return err
	}
	r.metadata.SetBaseURI(uri)
	r.emit(BaseURIChangedEvent{BaseURI: uri})
	return nil
}

// SetMintPrice replaces the mint price. Admin only.
func (r *Registry) SetMintPrice(caller identity.Address, price *uint256.Int) error {
	if err := r.requireRole(access.RoleAdmin, caller); err != nil {
		return err
	}
	r.policy.SetPrice(price)
	r.emit(PriceChangedEvent{Price: price.Dec()})
	return nil
}

// SetPublicMintEnabled toggles the public mint path. Admin only.
func (r *Registry) SetPublicMintEnabled(caller identity.Address, enabled bool) error {
	if err := r.requireRole(access.RoleAdmin, caller); err != nil {
		return err
	}
	r.policy.SetPublicMintEnabled(enabled)
	r.emit(MintToggledEvent{Path: "public", Enabled: enabled})
	return nil
}

// SetWhitelistMintEnabled toggles the whitelist mint path. Admin only.
func (r *Registry) SetWhitelistMintEnabled(caller identity.Address, enabled bool) error {
	if err := r.requireRole(access.RoleAdmin, caller); err != nil {
		return err
	}
	r.policy.SetWhitelistMintEnabled(enabled)
	r.emit(MintToggledEvent{Path: "whitelist", Enabled: enabled})
	return nil
}

// AddToWhitelist adds a batch of addresses to the whitelist. Admin
// only. One event covers the whole batch.
func (r *Registry) AddToWhitelist(caller identity.Address, ids []identity.Address) error {
	if err := r.requireRole(access.RoleAdmin, caller); err != nil {
		return err
	}
	r.policy.AddToWhitelist(ids)
	r.emit(WhitelistChangedEvent{Addresses: ids, Added: true})
	return nil
}

// RemoveFromWhitelist removes a batch of addresses from the whitelist.
// Admin only.
func (r *Registry) RemoveFromWhitelist(caller identity.Address, ids []identity.Address) error {
	if err := r.requireRole(access.RoleAdmin, caller); err != nil {
		return err
	}
	r.policy.RemoveFromWhitelist(ids)
	r.emit(WhitelistChangedEvent{Addresses: ids, Added: false})
	return nil
}

// SetRoyaltyInfo replaces the royalty recipient and percentage. Admin
// only; percentages above 1000 bps are rejected.
func (r *Registry) SetRoyaltyInfo(caller, recipient identity.Address, bps uint64) error {
	if err := r.requireRole(access.RoleAdmin, caller); err != nil {
		return err
	}
	if err := r.metadata.SetRoyaltyInfo(recipient, bps); err != nil {
		return err
	}
	r.emit(RoyaltyChangedEvent{Recipient: recipient, Bps: bps})
	return nil
}

// GrantRole grants a role. The caller must hold Admin.
func (r *Registry) GrantRole(caller identity.Address, role access.Role, to identity.Address) error {
	if err := r.roles.Grant(caller, role, to); err != nil {
		return err
	}
	r.emit(RoleGrantedEvent{Role: role, To: to, By: caller})
	return nil
}

// RevokeRole revokes a role. The caller must hold Admin.
func (r *Registry) RevokeRole(caller identity.Address, role access.Role, from identity.Address) error {
	if err := r.roles.Revoke(caller, role, from); err != nil {
		return err
	}
	r.emit(RoleRevokedEvent{Role: role, From: from, By: caller})
	return nil
}

// Pause engages the circuit breaker. Pauser only; pausing while
// already paused is an error.
func (r *Registry) Pause(caller identity.Address) error {
	if err := r.requireRole(access.RolePauser, caller); err != nil {
		return err
	}
	if err := r.breaker.Pause(); err != nil {
		return err
	}
	r.emit(PausedEvent{By: caller})
	return nil
}

// Unpause releases the circuit breaker. Pauser only; resuming while
// active is an error.
func (r *Registry) Unpause(caller identity.Address) error {
	if err := r.requireRole(access.RolePauser, caller); err != nil {
		return err
	}
	if err := r.breaker.Unpause(); err != nil {
		return err
	}
	r.emit(UnpausedEvent{By: caller})
	return nil
}

// Withdraw moves the entire treasury balance to the owner identity
// through send. Owner only, reentrancy guarded. If send fails the
// balance is restored and ErrWithdrawFailed is returned.
func (r *Registry) Withdraw(caller identity.Address, send TransferFunc) (*uint256.Int, error) {
	if err := r.requireOwner(caller); err != nil {
		return nil, err
	}
	if err := r.lock(); err != nil {
		return nil, err
	}
	defer r.unlock()

	amount := new(uint256.Int).Set(r.treasury)
	r.treasury.Clear()
	if send != nil {
		if err := send(r.roles.Owner(), amount); err != nil {
			r.treasury.Set(amount)
			return nil, fmt.Errorf("%w: %v", ErrWithdrawFailed, err)
		}
	}
	r.emit(WithdrawalEvent{To: r.roles.Owner(), Amount: amount.Dec()})
	return amount, nil
}
