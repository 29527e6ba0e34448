// Package secret provides access to the operating system's
// credential store, and a few alternative backends for platforms
// and tests where the system keychain is unavailable.
package secret

import (
	"errors"

	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when a secret is not found.
	ErrNotFound = errors.New("secret not found")

	// ErrUnsupported indicates that secure storage
	// via the system keychain is not supported on the current platform.
	ErrUnsupported = keyring.ErrUnsupportedPlatform
)

// Store saves and retrieves named secrets.
//
// Implementations must return [ErrNotFound] from Get and Delete
// when no secret exists under the given key,
// so that callers can tell "missing" apart from backend failures.
type Store interface {
	// Get returns the secret stored under the given key.
	Get(service, key string) (string, error)

	// Set stores a secret under the given key,
	// replacing any existing value.
	Set(service, key, value string) error

	// Delete removes the secret stored under the given key.
	Delete(service, key string) error
}
