// Package store is the Record Store: three independently keyed JSON
// collections over a client-local key-value backend, with write-through
// semantics. Core components never touch it directly; they receive plain
// collections as arguments.
package store

import "errors"

// Collection keys share the storage prefix the original records used, so a
// data directory carried over from an older install keeps working.
const (
	KeyCustomers = "sweet:customers"
	KeyProducts  = "sweet:products"
	KeyOrders    = "sweet:orders"
)

// ErrNotFound is returned by update operations targeting a missing record
var ErrNotFound = errors.New("record not found")

// OnWriteFailure, when set, is invoked for every swallowed backend write
// failure. Wiring installs a metrics hook here.
var OnWriteFailure func()

// Store abstracts the key-value backend. Load leaves v untouched when the
// key is absent, so a first read falls back to an empty collection.
type Store interface {
	Load(key string, v any) error
	Save(key string, v any) error
	Close() error
}
