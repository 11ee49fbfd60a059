// Package ledger holds the authoritative token ownership state: the
// id -> owner mapping plus the reverse indices needed for enumeration
// and balance queries, and the approval tables consulted on transfer.
//
// A token exists exactly when it has an owner. There is no burn path,
// so tokens persist forever once inserted. Every mutation updates all
// indices before returning, so callers observe a consistent view even
// when they run callbacks mid-operation.
package ledger

import (
	"errors"

	"github.com/jmakwana01/NFT-Foundry/identity"
)

var (
	// ErrNonexistentToken is returned for queries or transfers of a token
	// that was never minted.
	ErrNonexistentToken = errors.New("ledger: nonexistent token")

	// ErrTransferToZero is returned when the transfer destination is the
	// zero address.
	ErrTransferToZero = errors.New("ledger: transfer to zero address")

	// ErrNotOwnerOrApproved is returned when the caller is neither the
	// token owner nor approved to move it.
	ErrNotOwnerOrApproved = errors.New("ledger: caller is not owner or approved")

	// ErrIndexOutOfBounds is returned by enumeration beyond the current
	// token counts.
	ErrIndexOutOfBounds = errors.New("ledger: index out of bounds")

	// ErrWrongOwner is returned when a transfer names a from address that
	// does not currently own the token.
	ErrWrongOwner = errors.New("ledger: from address is not the owner")

	// ErrTokenExists is returned when inserting an id that is already
	// live. It indicates a policy bug: fresh ids come only from reserve.
	ErrTokenExists = errors.New("ledger: token already exists")
)

// Ledger is the token ownership state. The zero value is not usable;
// create one with New.
type Ledger struct {
	owners    map[uint64]identity.Address
	balances  map[identity.Address]uint64
	allTokens []uint64

	// Per-owner enumeration uses swap-and-pop removal, so within an
	// owner's list order is arbitrary but index lookup is O(1).
	ownedTokens map[identity.Address][]uint64
	ownedIndex  map[uint64]int

	approvals map[uint64]identity.Address
	operators map[identity.Address]map[identity.Address]bool
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		owners:      make(map[uint64]identity.Address),
		balances:    make(map[identity.Address]uint64),
		ownedTokens: make(map[identity.Address][]uint64),
		ownedIndex:  make(map[uint64]int),
		approvals:   make(map[uint64]identity.Address),
		operators:   make(map[identity.Address]map[identity.Address]bool),
	}
}

// Exists reports whether id is a live token.
func (l *Ledger) Exists(id uint64) bool {
	_, ok := l.owners[id]
	return ok
}

// OwnerOf returns the owner of a live token.
func (l *Ledger) OwnerOf(id uint64) (identity.Address, error) {
	owner, ok := l.owners[id]
	if !ok {
		return identity.Zero, ErrNonexistentToken
	}
	return owner, nil
}

// BalanceOf returns the number of live tokens owned by id.
func (l *Ledger) BalanceOf(id identity.Address) uint64 {
	return l.balances[id]
}

// TotalSupply returns the number of live tokens.
func (l *Ledger) TotalSupply() uint64 {
	return uint64(len(l.allTokens))
}

// TokenByIndex returns the i-th token in mint order.
func (l *Ledger) TokenByIndex(i uint64) (uint64, error) {
	if i >= uint64(len(l.allTokens)) {
		return 0, ErrIndexOutOfBounds
	}
	return l.allTokens[i], nil
}

// TokenOfOwnerByIndex returns the i-th token in owner's list.
func (l *Ledger) TokenOfOwnerByIndex(owner identity.Address, i uint64) (uint64, error) {
	owned := l.ownedTokens[owner]
	if i >= uint64(len(owned)) {
		return 0, ErrIndexOutOfBounds
	}
	return owned[i], nil
}

// TokensOf returns a copy of owner's token list.
func (l *Ledger) TokensOf(owner identity.Address) []uint64 {
	owned := l.ownedTokens[owner]
	out := make([]uint64, len(owned))
	copy(out, owned)
	return out
}

// Insert records a freshly reserved token id as owned by to. The id
// must not already be live and the owner must be non-zero.
func (l *Ledger) Insert(id uint64, to identity.Address) error {
	if to.IsZero() {
		return ErrTransferToZero
	}
	if l.Exists(id) {
		return ErrTokenExists
	}
	l.owners[id] = to
	l.balances[to]++
	l.allTokens = append(l.allTokens, id)
	l.ownedIndex[id] = len(l.ownedTokens[to])
	l.ownedTokens[to] = append(l.ownedTokens[to], id)
	return nil
}

// Transfer reassigns ownership of id from from to to and clears any
// single-token approval. All indices are updated before it returns.
// The position of id in the mint-order enumeration is unaffected.
func (l *Ledger) Transfer(id uint64, from, to identity.Address) error {
	owner, ok := l.owners[id]
	if !ok {
		return ErrNonexistentToken
	}
	if owner != from {
		return ErrWrongOwner
	}
	if to.IsZero() {
		return ErrTransferToZero
	}

	l.removeFromOwned(id, from)
	l.owners[id] = to
	l.balances[from]--
	l.balances[to]++
	l.ownedIndex[id] = len(l.ownedTokens[to])
	l.ownedTokens[to] = append(l.ownedTokens[to], id)
	delete(l.approvals, id)
	return nil
}

// removeFromOwned removes id from from's owned list with swap-and-pop.
func (l *Ledger) removeFromOwned(id uint64, from identity.Address) {
	owned := l.ownedTokens[from]
	idx := l.ownedIndex[id]
	last := len(owned) - 1
	if idx != last {
		moved := owned[last]
		owned[idx] = moved
		l.ownedIndex[moved] = idx
	}
	l.ownedTokens[from] = owned[:last]
	delete(l.ownedIndex, id)
}

// Approve records spender as the single approved identity for id.
func (l *Ledger) Approve(id uint64, spender identity.Address) error {
	if !l.Exists(id) {
		return ErrNonexistentToken
	}
	l.approvals[id] = spender
	return nil
}

// ApprovedFor returns the single approved identity for id, or the zero
// address if none is set.
func (l *Ledger) ApprovedFor(id uint64) identity.Address {
	return l.approvals[id]
}

// SetOperator records or clears operator approval for every token of
// owner.
func (l *Ledger) SetOperator(owner, operator identity.Address, enabled bool) {
	if enabled {
		ops, ok := l.operators[owner]
		if !ok {
			ops = make(map[identity.Address]bool)
			l.operators[owner] = ops
		}
		ops[operator] = true
		return
	}
	delete(l.operators[owner], operator)
}

// IsOperator reports whether operator is approved for all of owner's
// tokens.
func (l *Ledger) IsOperator(owner, operator identity.Address) bool {
	return l.operators[owner][operator]
}

// IsApprovedOrOwner reports whether caller may move id: the owner, the
// single approved identity, or an approved operator.
func (l *Ledger) IsApprovedOrOwner(caller identity.Address, id uint64) (bool, error) {
	owner, ok := l.owners[id]
	if !ok {
		return false, ErrNonexistentToken
	}
	if caller == owner || l.approvals[id] == caller || l.IsOperator(owner, caller) {
		return true, nil
	}
	return false, nil
}
