package secret

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// Keyring is a secure secret store that uses the system's keychain.
//
// Its zero value is ready for use.
type Keyring struct{}

var _ Store = (*Keyring)(nil)

func keyringService(service string) string {
	return "keyhold:" + service
}

// Set stores a secret in the keychain.
func (*Keyring) Set(service, key, value string) error {
	return keyring.Set(keyringService(service), key, value)
}

// Get retrieves a secret from the keychain.
// It returns [ErrNotFound] if no secret exists under the key.
func (*Keyring) Get(service, key string) (string, error) {
	value, err := keyring.Get(keyringService(service), key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	return value, err
}

// Delete removes a secret from the keychain.
// It returns [ErrNotFound] if no secret exists under the key.
func (*Keyring) Delete(service, key string) error {
	err := keyring.Delete(keyringService(service), key)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
