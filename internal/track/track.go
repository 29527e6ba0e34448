// Package track maintains an index of the secret keys known to keyhold.
//
// Operating system credential stores cannot be enumerated portably,
// so keyhold keeps a side index of the keys it has stored,
// one per namespace (secrets, accounts, per-project secrets).
// The index is authoritative for presence:
// a key missing from the index is treated as not stored,
// even if the backing store still holds a stale value for it.
package track

// Ledger persists the set of tracked key names for one namespace.
//
// Implementations perform a full read-modify-write of the key set;
// there is no locking discipline, and concurrent writers
// can lose updates. keyhold assumes single-process, sequential use.
type Ledger interface {
	// Load returns the tracked key names.
	// A ledger that has never been written loads as empty.
	Load() ([]string, error)

	// Save replaces the tracked key names with the given set.
	Save(keys []string) error

	// Clear removes the ledger's backing entry entirely.
	// Clearing a ledger that does not exist is not an error.
	Clear() error
}
