// Package policy enforces the supply and wallet-limit rules of the
// registry and owns the monotonically increasing token id counter.
//
// The wallet cap applies only to the public and whitelist mint paths.
// Admin mint paths are cap-exempt; that asymmetry is part of the
// design, not an oversight.
package policy

import (
	"errors"

	"github.com/holiman/uint256"
	"github.com/jmakwana01/NFT-Foundry/identity"
)

const (
	// MaxSupply is the hard cap on tokens ever minted.
	MaxSupply = 10000

	// MaxPerWallet caps publicly minted tokens per address.
	MaxPerWallet = 5
)

var (
	// ErrExceedsMaxSupply is returned when a reservation would push the
	// id counter past MaxSupply.
	ErrExceedsMaxSupply = errors.New("policy: exceeds max supply")

	// ErrExceedsMaxPerWallet is returned when a public or whitelist mint
	// would push an address past MaxPerWallet.
	ErrExceedsMaxPerWallet = errors.New("policy: exceeds max per wallet")

	// ErrPublicMintNotEnabled is returned when public minting is off.
	ErrPublicMintNotEnabled = errors.New("policy: public mint not enabled")

	// ErrWhitelistMintNotEnabled is returned when whitelist minting is off.
	ErrWhitelistMintNotEnabled = errors.New("policy: whitelist mint not enabled")

	// ErrNotWhitelisted is returned for whitelist mints by addresses not
	// on the whitelist.
	ErrNotWhitelisted = errors.New("policy: address not whitelisted")

	// ErrInsufficientPayment is returned when the attached payment is
	// below the mint price.
	ErrInsufficientPayment = errors.New("policy: insufficient payment")
)

// Policy is the supply and wallet-limit state. Create one with New.
type Policy struct {
	nextID   uint64
	mintedBy map[identity.Address]uint64

	price            *uint256.Int
	publicEnabled    bool
	whitelistEnabled bool
	whitelist        map[identity.Address]bool
}

// New creates a policy with the id counter at 1, minting disabled, and
// a zero price.
func New() *Policy {
	return &Policy{
		nextID:    1,
		mintedBy:  make(map[identity.Address]uint64),
		price:     uint256.NewInt(0),
		whitelist: make(map[identity.Address]bool),
	}
}

// NextID returns the id the next successful mint will receive.
func (p *Policy) NextID() uint64 {
	return p.nextID
}

// TotalMinted returns the number of ids ever issued.
func (p *Policy) TotalMinted() uint64 {
	return p.nextID - 1
}

// Reserve issues count fresh ids, or nothing. The supply check runs
// once before any id is issued, so a batch either fully succeeds or
// leaves the counter untouched.
func (p *Policy) Reserve(count uint64) ([]uint64, error) {
	if count == 0 {
		return nil, nil
	}
	if p.nextID+count-1 > MaxSupply {
		return nil, ErrExceedsMaxSupply
	}
	ids := make([]uint64, count)
	for i := range ids {
		ids[i] = p.nextID
		p.nextID++
	}
	return ids, nil
}

// CheckWalletCap reports whether id may still mint on a capped path.
func (p *Policy) CheckWalletCap(id identity.Address) error {
	if p.mintedBy[id] >= MaxPerWallet {
		return ErrExceedsMaxPerWallet
	}
	return nil
}

// RecordWalletMint counts a successful capped-path mint against id.
func (p *Policy) RecordWalletMint(id identity.Address) {
	p.mintedBy[id]++
}

// MintedBy returns how many capped-path mints id has performed.
func (p *Policy) MintedBy(id identity.Address) uint64 {
	return p.mintedBy[id]
}

// CheckPayment verifies that payment covers the current mint price.
// A nil payment counts as zero.
func (p *Policy) CheckPayment(payment *uint256.Int) error {
	if payment == nil {
		payment = uint256.NewInt(0)
	}
	if payment.Lt(p.price) {
		return ErrInsufficientPayment
	}
	return nil
}

// Price returns a copy of the current mint price.
func (p *Policy) Price() *uint256.Int {
	return new(uint256.Int).Set(p.price)
}

// SetPrice replaces the mint price.
func (p *Policy) SetPrice(price *uint256.Int) {
	p.price = new(uint256.Int).Set(price)
}

// PublicMintEnabled reports whether the public mint path is open.
func (p *Policy) PublicMintEnabled() bool {
	return p.publicEnabled
}

// SetPublicMintEnabled toggles the public mint path.
func (p *Policy) SetPublicMintEnabled(enabled bool) {
	p.publicEnabled = enabled
}

// WhitelistMintEnabled reports whether the whitelist mint path is open.
func (p *Policy) WhitelistMintEnabled() bool {
	return p.whitelistEnabled
}

// SetWhitelistMintEnabled toggles the whitelist mint path.
func (p *Policy) SetWhitelistMintEnabled(enabled bool) {
	p.whitelistEnabled = enabled
}

// IsWhitelisted reports whether id is on the whitelist.
func (p *Policy) IsWhitelisted(id identity.Address) bool {
	return p.whitelist[id]
}

// AddToWhitelist adds every address in ids to the whitelist.
func (p *Policy) AddToWhitelist(ids []identity.Address) {
	for _, id := range ids {
		p.whitelist[id] = true
	}
}

// RemoveFromWhitelist removes every address in ids from the whitelist.
func (p *Policy) RemoveFromWhitelist(ids []identity.Address) {
	for _, id := range ids {
		delete(p.whitelist, id)
	}
}
