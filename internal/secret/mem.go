package secret

import "sync"

type memoryKey struct{ service, key string }

// Memory is an in-memory secret store for testing.
// Its zero value is ready for use.
type Memory struct {
	m sync.Map // {service, key} -> value
}

var _ Store = (*Memory)(nil)

// Set stores a secret in the memory store.
func (m *Memory) Set(service, key, value string) error {
	m.m.Store(memoryKey{service, key}, value)
	return nil
}

// Get retrieves a secret from the memory store.
// It returns [ErrNotFound] if no secret exists under the key.
func (m *Memory) Get(service, key string) (string, error) {
	value, ok := m.m.Load(memoryKey{service, key})
	if !ok {
		return "", ErrNotFound
	}
	return value.(string), nil
}

// Delete removes a secret from the memory store.
// It returns [ErrNotFound] if no secret exists under the key.
func (m *Memory) Delete(service, key string) error {
	if _, ok := m.m.LoadAndDelete(memoryKey{service, key}); !ok {
		return ErrNotFound
	}
	return nil
}
