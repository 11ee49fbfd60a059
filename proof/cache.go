package proof

import (
	"math/big"
	"sync"

	"github.com/jmakwana01/NFT-Foundry/identity"
)

// AttestationCache memoizes attestations keyed by commitment.
// Proof generation is expensive; callers re-requesting an attestation
// for the same token, owner, and salt get the cached one back.
type AttestationCache struct {
	mu        sync.RWMutex
	cache     map[string]*Attestation
	order     []string
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// NewAttestationCache creates a cache holding at most maxSize
// attestations. When full, the oldest entry is evicted. Set maxSize
// to 0 for an unbounded cache.
func NewAttestationCache(maxSize int) *AttestationCache {
	return &AttestationCache{
		cache:   make(map[string]*Attestation),
		maxSize: maxSize,
	}
}

func cacheKey(commitment *big.Int) string {
	return commitment.Text(16)
}

// Get retrieves the cached attestation for a commitment, or nil.
func (c *AttestationCache) Get(commitment *big.Int) *Attestation {
	key := cacheKey(commitment)

	c.mu.Lock()
	defer c.mu.Unlock()

	if att, ok := c.cache[key]; ok {
		c.hits++
		return att
	}
	c.misses++
	return nil
}

// Put stores an attestation, evicting the oldest entry if the cache
// is full.
func (c *AttestationCache) Put(att *Attestation) {
	key := cacheKey(att.Commitment)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.cache[key]; ok {
		return
	}
	if c.maxSize > 0 && len(c.cache) >= c.maxSize {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.cache, oldest)
		c.evictions++
	}
	c.cache[key] = att
	c.order = append(c.order, key)
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
}

// Stats returns a snapshot of the cache counters.
func (c *AttestationCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.cache),
	}
}

// AttestCached returns the cached attestation for the commitment of
// (tokenID, owner, salt), proving and caching on a miss.
func (a *Attestor) AttestCached(c *AttestationCache, tokenID uint64, owner identity.Address, salt *big.Int) (*Attestation, error) {
	commitment := Commit(tokenID, owner, salt)
	if att := c.Get(commitment); att != nil {
		return att, nil
	}
	att, err := a.Attest(tokenID, owner, salt)
	if err != nil {
		return nil, err
	}
	c.Put(att)
	return att, nil
}
