package secret

import "errors"

// Fallback is a secret store that falls back to a secondary store
// if the primary store fails.
type Fallback struct {
	Primary, Secondary Store // required
}

var _ Store = (*Fallback)(nil)

// Set stores a secret in the primary store.
// If the operation fails, it falls back to the secondary store.
func (f *Fallback) Set(service, key, value string) error {
	if err := f.Primary.Set(service, key, value); err != nil {
		return f.Secondary.Set(service, key, value)
	}
	return nil
}

// Get retrieves a secret from the primary store.
// If the operation fails NOT because the secret is missing,
// it falls back to the secondary store.
func (f *Fallback) Get(service, key string) (string, error) {
	value, err := f.Primary.Get(service, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		value, err = f.Secondary.Get(service, key)
	}
	return value, err
}

// Delete removes a secret from the primary store,
// and if that fails, from the secondary store.
func (f *Fallback) Delete(service, key string) error {
	if err := f.Primary.Delete(service, key); err != nil {
		return f.Secondary.Delete(service, key)
	}
	return nil
}
