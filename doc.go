/*
Package sh provides a separately chained hash table mapping string keys
to values of any type.

The table is a fixed array of buckets, each holding a singly linked
chain of entries. The number of buckets is chosen by the caller and only
changes when the caller asks for it with Resize; the table never grows
or shrinks on its own.

Basic usage:

	t, err := sh.New[*Session](32)
	if err != nil {
		return err
	}
	defer t.Destroy()

	if err := t.Insert("alice", s); err != nil {
		return err
	}
	if s, ok := t.Get("alice"); ok {
		s.Touch()
	}

Keys are copied on insertion, so the table never aliases caller memory.
Values are stored as given and handed back on Update, Set and Delete.
A table built with WithOwnedData releases its remaining values when it
is destroyed.

Lookups are distinct from zero values: Get reports presence with a
boolean, Update and Delete fail with ErrNotFound.

A Table is not safe for concurrent use. Callers sharing a table across
goroutines must guard every call, Resize included, with their own lock.

Failure diagnostics are logged at DEBUG level through go-logging under
the module name "sh":

	logging.SetLevel(logging.DEBUG, "sh")
*/
package sh
