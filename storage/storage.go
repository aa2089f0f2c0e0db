// Package storage holds the key/value backends the cache shell can
// be built on: a hash-table-backed one and a comparator-ordered one,
// mirroring stlcache's map/unordered_map storage duality.
package storage

type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidStorage is returned by Swap when the supplied storage is
// not the same concrete type as the receiver.
const ErrInvalidStorage constError = "storage: incompatible storage type in swap"

// Storage is a key/value store. It never makes eviction decisions
// itself; it only records and returns entries for the cache shell.
type Storage[K comparable, V any] interface {
	// Insert adds k→v and reports true, or reports false without
	// modifying anything if k is already present.
	Insert(k K, v V) bool

	// Find returns the value for k and whether it was present.
	Find(k K) (V, bool)

	// Erase removes k and reports whether it was present.
	Erase(k K) bool

	// Count reports 1 if k is present, 0 otherwise.
	Count(k K) int

	// Size reports the number of stored entries.
	Size() int

	// Empty reports whether Size() == 0.
	Empty() bool

	// Clear removes every entry.
	Clear()

	// Swap exchanges the entire contents of the receiver and other.
	// It returns ErrInvalidStorage if other is not the same concrete
	// type as the receiver.
	Swap(other Storage[K, V]) error
}
