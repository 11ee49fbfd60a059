package proof

import (
	"math/big"
	"testing"
)

func fakeAttestation(n int64) *Attestation {
	return &Attestation{TokenID: uint64(n), Commitment: big.NewInt(n)}
}

func TestAttestationCacheHitMiss(t *testing.T) {
	c := NewAttestationCache(0)

	if att := c.Get(big.NewInt(1)); att != nil {
		t.Fatal("empty cache returned an attestation")
	}
	c.Put(fakeAttestation(1))
	att := c.Get(big.NewInt(1))
	if att == nil {
		t.Fatal("cached attestation not found")
	}
	if att.TokenID != 1 {
		t.Fatalf("wrong attestation: token %d", att.TokenID)
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("stats = %+v, want 1 hit and 1 miss", stats)
	}
}

func TestAttestationCacheEviction(t *testing.T) {
	c := NewAttestationCache(2)

	c.Put(fakeAttestation(1))
	c.Put(fakeAttestation(2))
	c.Put(fakeAttestation(3))

	if att := c.Get(big.NewInt(1)); att != nil {
		t.Fatal("oldest entry survived eviction")
	}
	if att := c.Get(big.NewInt(3)); att == nil {
		t.Fatal("newest entry missing")
	}

	stats := c.Stats()
	if stats.Evictions != 1 {
		t.Fatalf("evictions = %d, want 1", stats.Evictions)
	}
	if stats.Size != 2 {
		t.Fatalf("size = %d, want 2", stats.Size)
	}
}

func TestAttestationCacheDuplicatePut(t *testing.T) {
	c := NewAttestationCache(2)
	c.Put(fakeAttestation(1))
	c.Put(fakeAttestation(1))
	if got := c.Stats().Size; got != 1 {
		t.Fatalf("size after duplicate put = %d, want 1", got)
	}
}
