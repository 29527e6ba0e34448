package track

import (
	"errors"
	"fmt"
	"strings"

	"go.abhg.dev/keyhold/internal/must"
	"go.abhg.dev/keyhold/internal/secret"
)

// StoreLedger is a [Ledger] that persists the tracked key names
// as a single comma-joined secret inside a [secret.Store].
// The index travels with the secrets it describes.
type StoreLedger struct {
	// Store holds the ledger's backing entry.
	Store secret.Store // required

	// Service is the service name the entry is stored under.
	Service string // required

	// Key is the tracker key for the namespace.
	Key string // required
}

var _ Ledger = (*StoreLedger)(nil)

// Load returns the tracked key names.
func (l *StoreLedger) Load() ([]string, error) {
	joined, err := l.Store.Get(l.Service, l.Key)
	if err != nil {
		if errors.Is(err, secret.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tracker entry: %w", err)
	}

	var keys []string
	for _, key := range strings.Split(joined, ",") {
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Save replaces the tracked key names.
// Key names must not contain commas.
func (l *StoreLedger) Save(keys []string) error {
	must.NotBeBlankf(l.Key, "tracker key must be set")
	return l.Store.Set(l.Service, l.Key, strings.Join(keys, ","))
}

// Clear deletes the ledger's backing entry from the store.
func (l *StoreLedger) Clear() error {
	err := l.Store.Delete(l.Service, l.Key)
	if errors.Is(err, secret.ErrNotFound) {
		err = nil
	}
	return err
}
