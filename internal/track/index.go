package track

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/log/silog"
)

// Index tracks which keys have secrets stored under a namespace.
//
// Every read, write, and delete of an individual secret
// consults or updates the index before touching the backing store.
type Index struct {
	// Store holds the actual secret values.
	Store secret.Store // required

	// Ledger persists the set of tracked key names.
	Ledger Ledger // required

	// Service is the service name secrets are stored under.
	Service string // required

	// Log is the logger used by the index.
	Log *silog.Logger // required
}

// Keys returns the tracked key names, deduplicated and sorted.
// An index that has never been written reports no keys.
func (ix *Index) Keys() ([]string, error) {
	keys, err := ix.Ledger.Load()
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	slices.Sort(keys)
	return slices.Compact(keys), nil
}

// Get returns the secret stored under key.
//
// The index is authoritative for presence:
// if key is not tracked, Get returns an empty string without error,
// no matter what the backing store holds under that name.
// A tracked key with no stored value is also reported as absent;
// the inconsistency is tolerated, not surfaced.
func (ix *Index) Get(key string) (string, error) {
	keys, err := ix.Keys()
	if err != nil {
		return "", err
	}
	if !slices.Contains(keys, key) {
		return "", nil
	}

	value, err := ix.Store.Get(ix.Service, key)
	if errors.Is(err, secret.ErrNotFound) {
		ix.Log.Debug("Tracked key has no stored secret", "key", key)
		return "", nil
	}
	return value, err
}

// Set stores a secret under key and begins tracking it.
// Setting an empty key or an empty value is a no-op.
//
// The updated index is persisted before the secret is written,
// so a key never has a stored secret without being tracked.
func (ix *Index) Set(key, value string) error {
	if key == "" || value == "" {
		return nil
	}

	keys, err := ix.Keys()
	if err != nil {
		return err
	}
	if !slices.Contains(keys, key) {
		if err := ix.Ledger.Save(append(keys, key)); err != nil {
			return fmt.Errorf("save ledger: %w", err)
		}
	}

	return ix.Store.Set(ix.Service, key, value)
}

// Delete removes the secret stored under key and stops tracking it.
//
// The key is removed from the index regardless of the outcome
// of the store deletion. Deleting a key that is not tracked,
// or whose secret is already gone from the backing store,
// is not an error.
func (ix *Index) Delete(key string) error {
	keys, err := ix.Keys()
	if err != nil {
		return err
	}

	if i := slices.Index(keys, key); i >= 0 {
		if err := ix.Ledger.Save(slices.Delete(keys, i, i+1)); err != nil {
			return fmt.Errorf("save ledger: %w", err)
		}
	}

	if err := ix.Store.Delete(ix.Service, key); err != nil {
		if !errors.Is(err, secret.ErrNotFound) {
			return err
		}
		ix.Log.Debugf("Failed to delete %q - it does not exist.", key)
	}
	return nil
}

// Clear deletes every tracked secret and then the index itself.
// Secrets already missing from the backing store are skipped.
func (ix *Index) Clear() error {
	keys, err := ix.Keys()
	if err != nil {
		return err
	}

	var errs []error
	for _, key := range keys {
		err := ix.Store.Delete(ix.Service, key)
		if err != nil && !errors.Is(err, secret.ErrNotFound) {
			errs = append(errs, fmt.Errorf("delete %v: %w", key, err))
		}
	}

	if err := ix.Ledger.Clear(); err != nil {
		errs = append(errs, fmt.Errorf("clear ledger: %w", err))
	}
	return errors.Join(errs...)
}

// All iterates over tracked keys and their secret values.
//
// The sequence is lazy and restartable:
// the index and store are re-read on each iteration.
// Keys with an empty or missing value are skipped,
// as are keys whose lookup fails.
func (ix *Index) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		keys, err := ix.Keys()
		if err != nil {
			ix.Log.Debug("Could not load tracked keys", "error", err)
			return
		}

		for _, key := range keys {
			value, err := ix.Store.Get(ix.Service, key)
			if err != nil || value == "" {
				continue
			}
			if !yield(key, value) {
				return
			}
		}
	}
}
