package metadata

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/jmakwana01/NFT-Foundry/identity"
)

var recipient = identity.MustFromHex("0x00000000000000000000000000000000000000ff")

func TestResolveURI(t *testing.T) {
	s := New("ipfs://base/", recipient)

	t.Run("DefaultConcatenation", func(t *testing.T) {
		if got := s.ResolveURI(42); got != "ipfs://base/42" {
			t.Errorf("ResolveURI = %q, want %q", got, "ipfs://base/42")
		}
	})

	t.Run("OverrideWins", func(t *testing.T) {
		s.SetOverride(7, "ipfs://special")
		if got := s.ResolveURI(7); got != "ipfs://special" {
			t.Errorf("ResolveURI = %q, want override", got)
		}
	})

	t.Run("EmptyOverrideIgnored", func(t *testing.T) {
		s.SetOverride(8, "")
		if got := s.ResolveURI(8); got != "ipfs://base/8" {
			t.Errorf("ResolveURI = %q, want base concatenation", got)
		}
	})

	t.Run("BaseURIChange", func(t *testing.T) {
		s.SetBaseURI("https://api.example.com/token/")
		if got := s.ResolveURI(1); got != "https://api.example.com/token/1" {
			t.Errorf("ResolveURI = %q after base change", got)
		}
		// Overrides are unaffected by base changes.
		if got := s.ResolveURI(7); got != "ipfs://special" {
			t.Errorf("override lost after base change: %q", got)
		}
	})
}

func TestRoyalty(t *testing.T) {
	t.Run("FloorDivision", func(t *testing.T) {
		s := New("", recipient)
		if err := s.SetRoyaltyInfo(recipient, 750); err != nil {
			t.Fatalf("setRoyaltyInfo failed: %v", err)
		}
		who, amount := s.RoyaltyInfo(1, uint256.NewInt(1_000_000))
		if who != recipient {
			t.Errorf("recipient = %s, want %s", who, recipient)
		}
		if !amount.Eq(uint256.NewInt(75_000)) {
			t.Errorf("amount = %s, want 75000", amount.Dec())
		}
	})

	t.Run("FloorsRemainder", func(t *testing.T) {
		s := New("", recipient)
		if err := s.SetRoyaltyInfo(recipient, 333); err != nil {
			t.Fatalf("setRoyaltyInfo failed: %v", err)
		}
		_, amount := s.RoyaltyInfo(1, uint256.NewInt(101))
		// 101 * 333 / 10000 = 3.3633 -> 3
		if !amount.Eq(uint256.NewInt(3)) {
			t.Errorf("amount = %s, want 3", amount.Dec())
		}
	})

	t.Run("ZeroIsValid", func(t *testing.T) {
		s := New("", recipient)
		if err := s.SetRoyaltyInfo(recipient, 0); err != nil {
			t.Errorf("zero bps should be valid: %v", err)
		}
		_, amount := s.RoyaltyInfo(1, uint256.NewInt(1_000_000))
		if !amount.IsZero() {
			t.Errorf("amount = %s, want 0", amount.Dec())
		}
	})

	t.Run("OverCapRejected", func(t *testing.T) {
		s := New("", recipient)
		if err := s.SetRoyaltyInfo(recipient, 1001); !errors.Is(err, ErrInvalidRoyaltyPercentage) {
			t.Errorf("expected ErrInvalidRoyaltyPercentage, got %v", err)
		}
		if s.RoyaltyBps() != 0 {
			t.Errorf("failed set must not change state, bps = %d", s.RoyaltyBps())
		}
	})

	t.Run("NoExistenceCheck", func(t *testing.T) {
		s := New("", recipient)
		// Token 999999 was never minted; the calculator answers anyway.
		who, amount := s.RoyaltyInfo(999999, uint256.NewInt(100))
		if who != recipient || !amount.IsZero() {
			t.Errorf("unexpected result (%s, %s)", who, amount.Dec())
		}
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := New("ipfs://base/", recipient)
	s.SetOverride(3, "ipfs://three")
	if err := s.SetRoyaltyInfo(recipient, 500); err != nil {
		t.Fatalf("setRoyaltyInfo failed: %v", err)
	}

	restored := FromSnapshot(s.Snapshot())
	if restored.BaseURI() != "ipfs://base/" {
		t.Errorf("baseURI = %q", restored.BaseURI())
	}
	if restored.ResolveURI(3) != "ipfs://three" {
		t.Errorf("override lost: %q", restored.ResolveURI(3))
	}
	if restored.RoyaltyBps() != 500 || restored.RoyaltyRecipient() != recipient {
		t.Error("royalty state lost")
	}
}
