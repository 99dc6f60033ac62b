package sh

import "strings"

// nilIndex terminates a chain and marks an empty bucket.
const nilIndex = -1

// entry is one key/value record in the arena. Chains are threaded
// through next, which holds the arena index of the following entry in
// the same bucket.
type entry[V any] struct {
	hash   uint64
	key    string
	keyLen int
	data   V
	next   int
}

// newEntry builds an entry owning its own copy of key.
func newEntry[V any](hash uint64, key string, data V, next int) entry[V] {
	return entry[V]{
		hash:   hash,
		key:    strings.Clone(key),
		keyLen: len(key),
		data:   data,
		next:   next,
	}
}

// matches reports whether e holds key. The cached digest and length are
// compared before the bytes.
//
//go:nosplit
func (e *entry[V]) matches(hash uint64, key string) bool {
	return e.hash == hash && e.keyLen == len(key) && e.key == key
}

// reset drops the key copy and the data reference so the slot can be
// reused. next is left for the caller, who is threading the slot onto
// the free list.
func (e *entry[V]) reset() {
	e.hash = 0
	e.key = ""
	e.keyLen = 0
	e.data = *new(V)
}
