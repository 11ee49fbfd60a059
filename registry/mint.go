package registry

import (
	"github.com/holiman/uint256"
	"github.com/jmakwana01/NFT-Foundry/access"
	"github.com/jmakwana01/NFT-Foundry/identity"
	"github.com/jmakwana01/NFT-Foundry/ledger"
	"github.com/jmakwana01/NFT-Foundry/policy"
)

// PublicMint mints one token to to on the public path. The attached
// payment must cover the mint price; the whole payment is kept in the
// treasury. Payment sufficiency is checked before the wallet cap, so
// for a caller that both underpays and is at cap, underpayment wins.
func (r *Registry) PublicMint(caller, to identity.Address, payment *uint256.Int) (uint64, error) {
	_ = caller // the public path has no authorization check

	if err := r.requireActive(); err != nil {
		return 0, err
	}
	if err := r.lock(); err != nil {
		return 0, err
	}
	defer r.unlock()

	if !r.policy.PublicMintEnabled() {
		return 0, policy.ErrPublicMintNotEnabled
	}
	if err := r.policy.CheckPayment(payment); err != nil {
		return 0, err
	}
	if err := r.policy.CheckWalletCap(to); err != nil {
		return 0, err
	}
	return r.cappedMint(to, payment)
}

// WhitelistMint mints one token to to on the whitelist path. The
// membership check precedes the payment check; payment precedes the
// wallet cap.
func (r *Registry) WhitelistMint(caller, to identity.Address, payment *uint256.Int) (uint64, error) {
	_ = caller

	if err := r.requireActive(); err != nil {
		return 0, err
	}
	if err := r.lock(); err != nil {
		return 0, err
	}
	defer r.unlock()

	if !r.policy.WhitelistMintEnabled() {
		return 0, policy.ErrWhitelistMintNotEnabled
	}
	if !r.policy.IsWhitelisted(to) {
		return 0, policy.ErrNotWhitelisted
	}
	if err := r.policy.CheckPayment(payment); err != nil {
		return 0, err
	}
	if err := r.policy.CheckWalletCap(to); err != nil {
		return 0, err
	}
	return r.cappedMint(to, payment)
}

// cappedMint is the shared tail of the public and whitelist paths:
// reserve one id, assign ownership, count the mint against the wallet
// cap, bank the payment, and notify.
func (r *Registry) cappedMint(to identity.Address, payment *uint256.Int) (uint64, error) {
	if to.IsZero() {
		return 0, ledger.ErrTransferToZero
	}
	ids, err := r.policy.Reserve(1)
	if err != nil {
		return 0, err
	}
	id := ids[0]
	if err := r.ledger.Insert(id, to); err != nil {
		return 0, err
	}
	r.policy.RecordWalletMint(to)
	if payment != nil {
		r.treasury.Add(r.treasury, payment)
	}
	r.emit(TransferEvent{From: identity.Zero, To: to, TokenID: id})
	return id, nil
}

// BatchMint mints one token per recipient in array order. Requires the
// Minter role and is exempt from the wallet cap. The supply check runs
// once for the whole batch: a batch that does not fit issues nothing.
func (r *Registry) BatchMint(caller identity.Address, recipients []identity.Address) ([]uint64, error) {
	if err := r.requireActive(); err != nil {
		return nil, err
	}
	if err := r.requireRole(access.RoleMinter, caller); err != nil {
		return nil, err
	}
	if err := r.lock(); err != nil {
		return nil, err
	}
	defer r.unlock()

	// Validate every recipient before reserving so a bad entry cannot
	// consume ids mid-batch.
	for _, to := range recipients {
		if to.IsZero() {
			return nil, ledger.ErrTransferToZero
		}
	}
	ids, err := r.policy.Reserve(uint64(len(recipients)))
	if err != nil {
		return nil, err
	}
	for i, to := range recipients {
		if err := r.ledger.Insert(ids[i], to); err != nil {
			return nil, err
		}
	}
	for i, to := range recipients {
		r.emit(TransferEvent{From: identity.Zero, To: to, TokenID: ids[i]})
	}
	return ids, nil
}

// MintWithURI mints one token to to with an optional per-token locator
// override. Requires the Minter role and is exempt from the wallet cap.
// An empty uri leaves the default locator in effect.
func (r *Registry) MintWithURI(caller, to identity.Address, uri string) (uint64, error) {
	if err := r.requireActive(); err != nil {
		return 0, err
	}
	if err := r.requireRole(access.RoleMinter, caller); err != nil {
		return 0, err
	}
	if err := r.lock(); err != nil {
		return 0, err
	}
	defer r.unlock()

	if to.IsZero() {
		return 0, ledger.ErrTransferToZero
	}
	ids, err := r.policy.Reserve(1)
	if err != nil {
		return 0, err
	}
	id := ids[0]
	if err := r.ledger.Insert(id, to); err != nil {
		return 0, err
	}
	r.metadata.SetOverride(id, uri)
	r.emit(TransferEvent{From: identity.Zero, To: to, TokenID: id})
	return id, nil
}
