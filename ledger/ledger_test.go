package ledger

import (
	"errors"
	"testing"

	"github.com/jmakwana01/NFT-Foundry/identity"
)

var (
	alice = identity.MustFromHex("0x00000000000000000000000000000000000000aa")
	bob   = identity.MustFromHex("0x00000000000000000000000000000000000000bb")
	carol = identity.MustFromHex("0x00000000000000000000000000000000000000cc")
)

func TestInsert(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		l := New()
		if err := l.Insert(1, alice); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		owner, err := l.OwnerOf(1)
		if err != nil {
			t.Fatalf("ownerOf failed: %v", err)
		}
		if owner != alice {
			t.Errorf("expected alice, got %s", owner)
		}
		if l.BalanceOf(alice) != 1 {
			t.Errorf("expected balance 1, got %d", l.BalanceOf(alice))
		}
		if l.TotalSupply() != 1 {
			t.Errorf("expected supply 1, got %d", l.TotalSupply())
		}
	})

	t.Run("ZeroOwnerRejected", func(t *testing.T) {
		l := New()
		if err := l.Insert(1, identity.Zero); !errors.Is(err, ErrTransferToZero) {
			t.Errorf("expected ErrTransferToZero, got %v", err)
		}
	})

	t.Run("DuplicateRejected", func(t *testing.T) {
		l := New()
		if err := l.Insert(1, alice); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		if err := l.Insert(1, bob); !errors.Is(err, ErrTokenExists) {
			t.Errorf("expected ErrTokenExists, got %v", err)
		}
	})
}

func TestTransfer(t *testing.T) {
	setup := func(t *testing.T) *Ledger {
		t.Helper()
		l := New()
		for id := uint64(1); id <= 3; id++ {
			if err := l.Insert(id, alice); err != nil {
				t.Fatalf("insert %d failed: %v", id, err)
			}
		}
		return l
	}

	t.Run("UpdatesAllIndices", func(t *testing.T) {
		l := setup(t)
		if err := l.Transfer(2, alice, bob); err != nil {
			t.Fatalf("transfer failed: %v", err)
		}
		owner, _ := l.OwnerOf(2)
		if owner != bob {
			t.Errorf("expected bob, got %s", owner)
		}
		if l.BalanceOf(alice) != 2 || l.BalanceOf(bob) != 1 {
			t.Errorf("balances wrong: alice=%d bob=%d", l.BalanceOf(alice), l.BalanceOf(bob))
		}
		if got := l.TokensOf(bob); len(got) != 1 || got[0] != 2 {
			t.Errorf("bob's tokens wrong: %v", got)
		}
		if got := l.TokensOf(alice); len(got) != 2 {
			t.Errorf("alice's tokens wrong: %v", got)
		}
		// Mint-order enumeration is unaffected by transfers.
		for i, want := range []uint64{1, 2, 3} {
			id, err := l.TokenByIndex(uint64(i))
			if err != nil {
				t.Fatalf("tokenByIndex(%d) failed: %v", i, err)
			}
			if id != want {
				t.Errorf("tokenByIndex(%d) = %d, want %d", i, id, want)
			}
		}
	})

	t.Run("ClearsApproval", func(t *testing.T) {
		l := setup(t)
		if err := l.Approve(1, carol); err != nil {
			t.Fatalf("approve failed: %v", err)
		}
		if err := l.Transfer(1, alice, bob); err != nil {
			t.Fatalf("transfer failed: %v", err)
		}
		if got := l.ApprovedFor(1); !got.IsZero() {
			t.Errorf("approval should be cleared, got %s", got)
		}
	})

	t.Run("WrongOwner", func(t *testing.T) {
		l := setup(t)
		if err := l.Transfer(1, bob, carol); !errors.Is(err, ErrWrongOwner) {
			t.Errorf("expected ErrWrongOwner, got %v", err)
		}
	})

	t.Run("NonexistentToken", func(t *testing.T) {
		l := setup(t)
		if err := l.Transfer(99, alice, bob); !errors.Is(err, ErrNonexistentToken) {
			t.Errorf("expected ErrNonexistentToken, got %v", err)
		}
	})

	t.Run("ToZero", func(t *testing.T) {
		l := setup(t)
		if err := l.Transfer(1, alice, identity.Zero); !errors.Is(err, ErrTransferToZero) {
			t.Errorf("expected ErrTransferToZero, got %v", err)
		}
	})

	t.Run("BalanceMatchesOwnedList", func(t *testing.T) {
		l := setup(t)
		moves := []struct {
			id       uint64
			from, to identity.Address
		}{
			{1, alice, bob},
			{3, alice, bob},
			{1, bob, carol},
			{2, alice, carol},
		}
		for _, m := range moves {
			if err := l.Transfer(m.id, m.from, m.to); err != nil {
				t.Fatalf("transfer %d failed: %v", m.id, err)
			}
		}
		for _, who := range []identity.Address{alice, bob, carol} {
			if l.BalanceOf(who) != uint64(len(l.TokensOf(who))) {
				t.Errorf("balance of %s (%d) != owned list length (%d)",
					who, l.BalanceOf(who), len(l.TokensOf(who)))
			}
		}
		if l.TotalSupply() != 3 {
			t.Errorf("supply changed: %d", l.TotalSupply())
		}
	})
}

func TestEnumeration(t *testing.T) {
	l := New()
	if _, err := l.TokenByIndex(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := l.TokenOfOwnerByIndex(alice, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := l.Insert(1, alice); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	id, err := l.TokenOfOwnerByIndex(alice, 0)
	if err != nil || id != 1 {
		t.Errorf("tokenOfOwnerByIndex = (%d, %v), want (1, nil)", id, err)
	}
	if _, err := l.TokenOfOwnerByIndex(alice, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestApprovals(t *testing.T) {
	t.Run("SingleApproval", func(t *testing.T) {
		l := New()
		if err := l.Approve(1, bob); !errors.Is(err, ErrNonexistentToken) {
			t.Errorf("expected ErrNonexistentToken, got %v", err)
		}
		if err := l.Insert(1, alice); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		if err := l.Approve(1, bob); err != nil {
			t.Fatalf("approve failed: %v", err)
		}
		ok, err := l.IsApprovedOrOwner(bob, 1)
		if err != nil || !ok {
			t.Errorf("bob should be approved for token 1")
		}
	})

	t.Run("Operator", func(t *testing.T) {
		l := New()
		if err := l.Insert(1, alice); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		l.SetOperator(alice, carol, true)
		ok, err := l.IsApprovedOrOwner(carol, 1)
		if err != nil || !ok {
			t.Error("carol should be approved as operator")
		}
		l.SetOperator(alice, carol, false)
		ok, err = l.IsApprovedOrOwner(carol, 1)
		if err != nil || ok {
			t.Error("carol should no longer be approved")
		}
	})

	t.Run("Stranger", func(t *testing.T) {
		l := New()
		if err := l.Insert(1, alice); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		ok, err := l.IsApprovedOrOwner(bob, 1)
		if err != nil || ok {
			t.Error("bob should not be approved")
		}
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	l := New()
	for id := uint64(1); id <= 4; id++ {
		if err := l.Insert(id, alice); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	if err := l.Transfer(2, alice, bob); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if err := l.Approve(3, carol); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	l.SetOperator(alice, bob, true)

	restored, err := FromSnapshot(l.Snapshot())
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if restored.TotalSupply() != l.TotalSupply() {
		t.Errorf("supply mismatch: %d vs %d", restored.TotalSupply(), l.TotalSupply())
	}
	for _, who := range []identity.Address{alice, bob, carol} {
		if restored.BalanceOf(who) != l.BalanceOf(who) {
			t.Errorf("balance mismatch for %s", who)
		}
	}
	if got := restored.ApprovedFor(3); got != carol {
		t.Errorf("approval not restored, got %s", got)
	}
	if !restored.IsOperator(alice, bob) {
		t.Error("operator approval not restored")
	}
	for i := uint64(0); i < l.TotalSupply(); i++ {
		a, _ := l.TokenByIndex(i)
		b, _ := restored.TokenByIndex(i)
		if a != b {
			t.Errorf("mint order mismatch at %d: %d vs %d", i, a, b)
		}
	}
}
