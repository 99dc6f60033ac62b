package sh

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// MaxSize is the largest bucket count a table accepts. Larger requests
// fail with ErrTooLarge rather than attempting the allocation.
const MaxSize = 1 << 30

// Table is a hash table from string keys to values of type V, resolving
// collisions by chaining.
//
// Entries live in a single arena slice. Each bucket holds the arena index
// of the first entry in its chain, and each entry holds the index of the
// next one, so unlinking and rehashing only rewrite indices. Slots freed
// by Delete are kept on a free list and reused by later inserts.
//
// Insertion prepends to a chain; entries sharing a bucket have no other
// ordering.
//
// The zero Table has no buckets and must be set up with Init before use.
// A Table must not be used from multiple goroutines without external
// locking.
type Table[V any] struct {
	buckets []int      // arena index of each chain head, or nilIndex
	entries []entry[V] // arena
	free    int        // head of the free slot list, or nilIndex
	count   int        // live entries
	hasher  HashFunc
	release func(V) error // WithOwnedData
}

// Config defines configurable Table options.
type Config struct {
	hasher  HashFunc
	release any
}

// WithHasher configures the table to digest keys with h instead of
// DJB2. A nil h keeps the default.
func WithHasher(h HashFunc) func(*Config) {
	return func(c *Config) {
		c.hasher = h
	}
}

// WithOwnedData hands ownership of stored values to the table: Destroy
// calls release once for every value still stored. Values returned by
// Update, Set and Delete go back to the caller and are never released.
//
// The type of release must match the table's value type, otherwise New
// and Init fail with ErrInvalidOption.
func WithOwnedData[V any](release func(V) error) func(*Config) {
	return func(c *Config) {
		c.release = release
	}
}

// New allocates a table with size buckets.
//
// Parameters:
//   - size: number of buckets, at least 1 and at most MaxSize
//   - WithHasher option to replace the DJB2 digest
//   - WithOwnedData option to release values on Destroy
func New[V any](size int, options ...func(*Config)) (*Table[V], error) {
	t := &Table[V]{}
	if err := t.Init(size, options...); err != nil {
		log.Debugf("new: %v", err)
		return nil, err
	}
	return t, nil
}

// Init sets up an already allocated table with size buckets and no
// entries. Anything the table held before is discarded without being
// released.
func (t *Table[V]) Init(size int, options ...func(*Config)) error {
	if t == nil {
		log.Debug("init: table undef")
		return ErrNilTable
	}
	if err := checkSize(size); err != nil {
		log.Debugf("init: %v", err)
		return err
	}

	var cfg Config
	for _, opt := range options {
		opt(&cfg)
	}
	var release func(V) error
	if cfg.release != nil {
		var ok bool
		if release, ok = cfg.release.(func(V) error); !ok {
			log.Debugf("init: release func %T does not match table", cfg.release)
			return fmt.Errorf("%w: release func %T does not match table values",
				ErrInvalidOption, cfg.release)
		}
	}
	hasher := cfg.hasher
	if hasher == nil {
		hasher = DJB2
	}

	*t = Table[V]{
		buckets: newBuckets(size),
		free:    nilIndex,
		hasher:  hasher,
		release: release,
	}
	return nil
}

func checkSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if size > MaxSize {
		return fmt.Errorf("%w: got %d", ErrTooLarge, size)
	}
	return nil
}

func newBuckets(size int) []int {
	b := make([]int, size)
	for i := range b {
		b[i] = nilIndex
	}
	return b
}

// ready reports why t cannot serve op, if it cannot.
func (t *Table[V]) ready(op string) error {
	if t == nil {
		log.Debugf("%s: table undef", op)
		return ErrNilTable
	}
	if len(t.buckets) == 0 {
		log.Debugf("%s: table has no buckets", op)
		return ErrNotInitialized
	}
	return nil
}

// findEntry returns the arena index of the entry holding key in bucket
// pos, or nilIndex. This is the only place keys are compared.
func (t *Table[V]) findEntry(pos int, hash uint64, key string) int {
	for i := t.buckets[pos]; i != nilIndex; i = t.entries[i].next {
		if t.entries[i].matches(hash, key) {
			return i
		}
	}
	return nilIndex
}

// locate hashes key and finds its entry.
func (t *Table[V]) locate(key string) (hash uint64, pos, idx int) {
	hash = t.hasher(key)
	pos = position(hash, len(t.buckets))
	return hash, pos, t.findEntry(pos, hash, key)
}

// link places a new entry at the head of bucket pos, reusing a free slot
// when there is one.
func (t *Table[V]) link(pos int, hash uint64, key string, data V) {
	e := newEntry(hash, key, data, t.buckets[pos])
	idx := t.free
	if idx != nilIndex {
		t.free = t.entries[idx].next
		t.entries[idx] = e
	} else {
		idx = len(t.entries)
		t.entries = append(t.entries, e)
	}
	t.buckets[pos] = idx
	t.count++
}

// Exists reports whether key is stored in the table.
func (t *Table[V]) Exists(key string) bool {
	if t.ready("exists") != nil {
		return false
	}
	_, _, idx := t.locate(key)
	return idx != nilIndex
}

// Insert stores data under key. It fails with ErrKeyExists, leaving the
// table untouched, if key is already present.
func (t *Table[V]) Insert(key string, data V) error {
	if err := t.ready("insert"); err != nil {
		return err
	}
	hash, pos, idx := t.locate(key)
	if idx != nilIndex {
		log.Debugf("insert: key %q already exists", key)
		return ErrKeyExists
	}
	t.link(pos, hash, key, data)
	return nil
}

// Update replaces the data stored under an existing key and returns the
// previous data. It fails with ErrNotFound if key is absent.
func (t *Table[V]) Update(key string, data V) (previous V, err error) {
	if err = t.ready("update"); err != nil {
		return previous, err
	}
	_, _, idx := t.locate(key)
	if idx == nilIndex {
		log.Debugf("update: key %q not found", key)
		return previous, ErrNotFound
	}
	e := &t.entries[idx]
	previous, e.data = e.data, data
	return previous, nil
}

// Set stores data under key whether or not it is present. If key was
// present, the previous data is returned and loaded is true; otherwise a
// new entry is inserted.
func (t *Table[V]) Set(key string, data V) (previous V, loaded bool, err error) {
	if err = t.ready("set"); err != nil {
		return previous, false, err
	}
	hash, pos, idx := t.locate(key)
	if idx != nilIndex {
		e := &t.entries[idx]
		previous, e.data = e.data, data
		return previous, true, nil
	}
	t.link(pos, hash, key, data)
	return previous, false, nil
}

// Get returns the data stored under key. The ok result reports whether
// key was found.
func (t *Table[V]) Get(key string) (data V, ok bool) {
	if t.ready("get") != nil {
		return data, false
	}
	_, _, idx := t.locate(key)
	if idx == nilIndex {
		return data, false
	}
	return t.entries[idx].data, true
}

// Delete removes key and returns the data that was stored under it. The
// data is never released, even for tables built WithOwnedData. It fails
// with ErrNotFound if key is absent.
func (t *Table[V]) Delete(key string) (data V, err error) {
	if err = t.ready("delete"); err != nil {
		return data, err
	}
	hash := t.hasher(key)
	pos := position(hash, len(t.buckets))

	prev := nilIndex
	for i := t.buckets[pos]; i != nilIndex; prev, i = i, t.entries[i].next {
		e := &t.entries[i]
		if !e.matches(hash, key) {
			continue
		}
		if prev == nilIndex {
			t.buckets[pos] = e.next
		} else {
			t.entries[prev].next = e.next
		}
		data = e.data
		e.reset()
		e.next = t.free
		t.free = i
		t.count--
		return data, nil
	}
	log.Debugf("delete: key %q not found", key)
	return data, ErrNotFound
}

// Resize redistributes every entry over newSize buckets using the cached
// digests. Entries and their data are left in place; only chain links
// change, and entries landing in the same bucket may come out in a
// different order. On failure the table is unchanged.
func (t *Table[V]) Resize(newSize int) error {
	if err := t.ready("resize"); err != nil {
		return err
	}
	if err := checkSize(newSize); err != nil {
		log.Debugf("resize: %v", err)
		return err
	}

	buckets := newBuckets(newSize)
	for _, head := range t.buckets {
		for i := head; i != nilIndex; {
			e := &t.entries[i]
			next := e.next
			pos := position(e.hash, newSize)
			e.next = buckets[pos]
			buckets[pos] = i
			i = next
		}
	}
	t.buckets = buckets
	return nil
}

// Destroy removes every entry and the bucket array, leaving a table that
// must be re-initialized before further use. Tables built WithOwnedData
// release every stored value first; all release errors are returned
// together, and the table is torn down regardless.
func (t *Table[V]) Destroy() error {
	if t == nil {
		log.Debug("destroy: table undef")
		return ErrNilTable
	}

	var result *multierror.Error
	if t.release != nil {
		for _, head := range t.buckets {
			for i := head; i != nilIndex; i = t.entries[i].next {
				if err := t.release(t.entries[i].data); err != nil {
					log.Debugf("destroy: releasing %q: %v", t.entries[i].key, err)
					result = multierror.Append(result, fmt.Errorf("release %q: %w", t.entries[i].key, err))
				}
			}
		}
	}

	t.buckets = nil
	t.entries = nil
	t.free = nilIndex
	t.count = 0
	return result.ErrorOrNil()
}

// Count returns the number of entries stored in the table. A nil table
// holds none.
func (t *Table[V]) Count() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Size returns the number of buckets, or 0 for a nil or uninitialized
// table.
func (t *Table[V]) Size() int {
	if t == nil {
		return 0
	}
	return len(t.buckets)
}
