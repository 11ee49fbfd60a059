package registry

import (
	"fmt"

	"github.com/jmakwana01/NFT-Foundry/identity"
	"github.com/jmakwana01/NFT-Foundry/ledger"
)

// Receiver is the acceptance hook for checked transfers. A destination
// that wants to vet incoming tokens implements OnTokenReceived; a
// non-nil error rejects the token and rolls the transfer back.
type Receiver interface {
	OnTokenReceived(operator, from, to identity.Address, id uint64) error
}

// TransferFrom moves token id from from to to. The caller must be the
// owner, the single approved identity, or an approved operator. The
// single-token approval is cleared and every enumeration index is
// updated before the call returns.
func (r *Registry) TransferFrom(caller, from, to identity.Address, id uint64) error {
	if err := r.requireActive(); err != nil {
		return err
	}
	ok, err := r.ledger.IsApprovedOrOwner(caller, id)
	if err != nil {
		return err
	}
	if !ok {
		return ledger.ErrNotOwnerOrApproved
	}
	if err := r.lock(); err != nil {
		return err
	}
	defer r.unlock()

	if err := r.ledger.Transfer(id, from, to); err != nil {
		return err
	}
	r.emit(TransferEvent{From: from, To: to, TokenID: id})
	return nil
}

// SafeTransferFrom is TransferFrom with a receiver acceptance hook.
// The ledger is fully updated before the hook runs, so a reentrant
// call from the hook observes consistent state (and is blocked by the
// reentrancy lock). If the hook rejects, the transfer is undone,
// including any cleared single-token approval, and no event fires.
func (r *Registry) SafeTransferFrom(caller, from, to identity.Address, id uint64, receiver Receiver) error {
	if err := r.requireActive(); err != nil {
		return err
	}
	ok, err := r.ledger.IsApprovedOrOwner(caller, id)
	if err != nil {
		return err
	}
	if !ok {
		return ledger.ErrNotOwnerOrApproved
	}
	if err := r.lock(); err != nil {
		return err
	}
	defer r.unlock()

	approvedBefore := r.ledger.ApprovedFor(id)
	if err := r.ledger.Transfer(id, from, to); err != nil {
		return err
	}
	if receiver != nil {
		if err := receiver.OnTokenReceived(caller, from, to, id); err != nil {
			// Roll the ownership change back and restore the approval
			// the forward transfer cleared.
			if undoErr := r.ledger.Transfer(id, to, from); undoErr != nil {
				return fmt.Errorf("%w: rollback failed: %v", ErrTransferRejected, undoErr)
			}
			if !approvedBefore.IsZero() {
				if undoErr := r.ledger.Approve(id, approvedBefore); undoErr != nil {
					return fmt.Errorf("%w: rollback failed: %v", ErrTransferRejected, undoErr)
				}
			}
			return fmt.Errorf("%w: %v", ErrTransferRejected, err)
		}
	}
	r.emit(TransferEvent{From: from, To: to, TokenID: id})
	return nil
}

// Approve sets spender as the single approved identity for token id.
// The caller must be the token owner or an approved operator.
func (r *Registry) Approve(caller, spender identity.Address, id uint64) error {
	if err := r.requireActive(); err != nil {
		return err
	}
	owner, err := r.ledger.OwnerOf(id)
	if err != nil {
		return err
	}
	if caller != owner && !r.ledger.IsOperator(owner, caller) {
		return ledger.ErrNotOwnerOrApproved
	}
	if err := r.lock(); err != nil {
		return err
	}
	defer r.unlock()

	if err := r.ledger.Approve(id, spender); err != nil {
		return err
	}
	r.emit(ApprovalEvent{Owner: owner, Approved: spender, TokenID: id})
	return nil
}

// SetApprovalForAll grants or revokes operator rights over every token
// the caller owns now or later. Any caller may set this for itself.
func (r *Registry) SetApprovalForAll(caller, operator identity.Address, enabled bool) error {
	if err := r.requireActive(); err != nil {
		return err
	}
	if err := r.lock(); err != nil {
		return err
	}
	defer r.unlock()

	r.ledger.SetOperator(caller, operator, enabled)
	r.emit(ApprovalForAllEvent{Owner: caller, Operator: operator, Approved: enabled})
	return nil
}
