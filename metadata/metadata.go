// Package metadata holds the token locator store (default base URI plus
// optional per-token overrides) and the informational royalty policy.
//
// Royalty data is a query-only calculator: it never moves funds and
// deliberately does not check that a queried token exists.
package metadata

import (
	"errors"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/jmakwana01/NFT-Foundry/identity"
)

// MaxRoyaltyBps caps the royalty percentage at 10%.
const MaxRoyaltyBps = 1000

// bpsDenominator converts basis points to a fraction (10000 bps = 100%).
const bpsDenominator = 10000

// ErrInvalidRoyaltyPercentage is returned when setting a royalty above
// MaxRoyaltyBps. Zero is valid and means no royalty.
var ErrInvalidRoyaltyPercentage = errors.New("metadata: royalty percentage exceeds maximum")

// Store holds URI and royalty state. Create one with New.
type Store struct {
	baseURI   string
	overrides map[uint64]string

	royaltyRecipient identity.Address
	royaltyBps       uint64
}

// New creates a store with the given base URI and royalty recipient,
// and no royalty percentage set.
func New(baseURI string, royaltyRecipient identity.Address) *Store {
	return &Store{
		baseURI:          baseURI,
		overrides:        make(map[uint64]string),
		royaltyRecipient: royaltyRecipient,
	}
}

// BaseURI returns the default locator prefix.
func (s *Store) BaseURI() string {
	return s.baseURI
}

// SetBaseURI replaces the default locator prefix.
func (s *Store) SetBaseURI(uri string) {
	s.baseURI = uri
}

// SetOverride records a per-token locator. An empty uri is ignored so
// mint paths can pass through optional metadata unconditionally.
func (s *Store) SetOverride(id uint64, uri string) {
	if uri == "" {
		return
	}
	s.overrides[id] = uri
}

// ResolveURI returns the locator for id: the override when present,
// otherwise the base URI concatenated with the decimal id. Existence of
// the token is the caller's concern, checked before resolution.
func (s *Store) ResolveURI(id uint64) string {
	if uri, ok := s.overrides[id]; ok {
		return uri
	}
	return s.baseURI + strconv.FormatUint(id, 10)
}

// SetRoyaltyInfo replaces the royalty recipient and percentage.
func (s *Store) SetRoyaltyInfo(recipient identity.Address, bps uint64) error {
	if bps > MaxRoyaltyBps {
		return ErrInvalidRoyaltyPercentage
	}
	s.royaltyRecipient = recipient
	s.royaltyBps = bps
	return nil
}

// RoyaltyInfo returns the royalty recipient and the amount owed on a
// sale at salePrice: floor(salePrice * bps / 10000). The id parameter
// is accepted for interface shape only; no existence check is made.
func (s *Store) RoyaltyInfo(id uint64, salePrice *uint256.Int) (identity.Address, *uint256.Int) {
	_ = id
	amount := new(uint256.Int)
	if salePrice != nil {
		amount.Mul(salePrice, uint256.NewInt(s.royaltyBps))
		amount.Div(amount, uint256.NewInt(bpsDenominator))
	}
	return s.royaltyRecipient, amount
}

// RoyaltyRecipient returns the current royalty recipient.
func (s *Store) RoyaltyRecipient() identity.Address {
	return s.royaltyRecipient
}

// RoyaltyBps returns the current royalty percentage in basis points.
func (s *Store) RoyaltyBps() uint64 {
	return s.royaltyBps
}
