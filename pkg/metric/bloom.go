package metric

import (
	"github.com/bits-and-blooms/bitset"
)

const DEFAULT_BLOOM_BITS = 16

// BloomCache answers "does this rune / rune pair have a custom cost?"
// without touching the cost maps. False positives only cost an extra map
// lookup; a false negative would return a wrong distance, so Check must
// never miss a value that was Added.
type BloomCache struct {
	cache *bitset.BitSet
	mask  uint64
}

func NewBloomCache(bits uint) *BloomCache {
	size := uint64(1) << bits
	return &BloomCache{
		cache: bitset.New(uint(size)),
		mask:  size - 1,
	}
}

func (bc *BloomCache) Add(hash uint64) {
	h1 := (hash << 2) ^ hash
	h2 := (hash >> 2) ^ hash
	bc.cache.Set(uint(h1 & bc.mask))
	bc.cache.Set(uint(h2 & bc.mask))
}

func (bc *BloomCache) Check(hash uint64) bool {
	h1 := (hash << 2) ^ hash
	h2 := (hash >> 2) ^ hash
	return bc.cache.Test(uint(h1&bc.mask)) && bc.cache.Test(uint(h2&bc.mask))
}

func runeHash(r rune) uint64 {
	return uint64(uint32(r))
}

// runePairHash is intentionally non-commutative: (a,b) and (b,a) are
// distinct entries and must be Added independently.
func runePairHash(first, second rune) uint64 {
	return (runeHash(first) << 2) ^ runeHash(second)
}
