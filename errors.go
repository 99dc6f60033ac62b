package sh

import "errors"

var (
	// ErrNilTable is returned by every method called on a nil *Table.
	ErrNilTable = errors.New("sh: nil table")
	// ErrInvalidSize is returned when a table is asked to hold zero or a
	// negative number of buckets.
	ErrInvalidSize = errors.New("sh: table size must be at least 1")
	// ErrTooLarge is returned instead of attempting a bucket array larger
	// than MaxSize.
	ErrTooLarge = errors.New("sh: table size exceeds MaxSize")
	// ErrNotInitialized is returned by operations on a table that has no
	// buckets, either a zero Table or one that has been destroyed.
	ErrNotInitialized = errors.New("sh: table not initialized")
	// ErrKeyExists is returned by Insert when the key is already present.
	ErrKeyExists = errors.New("sh: key already exists")
	// ErrNotFound is returned by Update and Delete when the key is absent.
	ErrNotFound = errors.New("sh: key not found")
)

// ErrInvalidOption is returned by New and Init when an option does not
// fit the table it is applied to.
var ErrInvalidOption = errors.New("sh: invalid option")
