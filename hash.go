package sh

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to its digest. A table caches the digest of every
// entry, so the function must be deterministic and fixed for the
// table's lifetime.
type HashFunc func(key string) uint64

// DJB2 is the default HashFunc: starting from zero, every byte c of the
// key folds in as hash*33 + c, wrapping around on overflow.
//
// Zero is a valid digest (the empty key hashes to it).
func DJB2(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return h
}

// XXHash is a HashFunc backed by 64-bit xxHash. It spreads similar keys
// far better than DJB2 at the cost of an incompatible digest.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// position reduces a digest to a bucket index. size must be at least 1;
// every caller checks this before reaching here.
//
//go:nosplit
func position(hash uint64, size int) int {
	return int(hash % uint64(size))
}
