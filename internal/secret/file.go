package secret

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.abhg.dev/log/silog"
)

// File is a secret store that keeps secrets in plain text
// in a JSON file on disk.
// It prints a warning the first time it creates the file.
type File struct {
	// Path to the secrets file.
	Path string // required

	// Log is the logger used by the store.
	Log *silog.Logger // required
}

var _ Store = (*File)(nil)

type fileData struct {
	// Services maps service name to the secrets stored under it.
	Services map[string]map[string]string `json:"services"`
}

func (d *fileData) empty() bool {
	for _, secrets := range d.Services {
		if len(secrets) > 0 {
			return false
		}
	}
	return true
}

func (f *File) load() (*fileData, error) {
	bs, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return new(fileData), nil
		}
		return nil, fmt.Errorf("read: %w", err)
	}

	var data fileData
	if err := json.Unmarshal(bs, &data); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &data, nil
}

// save writes the store back to disk,
// deleting the file if the store is empty.
func (f *File) save(data *fileData) error {
	if data.empty() {
		if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove: %w", err)
		}
		return nil
	}

	bs, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	var firstTime bool
	if _, err := os.Stat(f.Path); err != nil {
		firstTime = errors.Is(err, os.ErrNotExist)
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	if err := os.WriteFile(f.Path, bs, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if firstTime {
		f.Log.Warnf("Storing secrets in plain text at %s. Be careful!", f.Path)
	}

	return nil
}

// Set stores a secret in the file, creating it if necessary.
// The first time it creates the file, it prints a warning.
func (f *File) Set(service, key, value string) error {
	data, err := f.load()
	if err != nil {
		return err
	}

	if data.Services == nil {
		data.Services = make(map[string]map[string]string)
	}
	secrets, ok := data.Services[service]
	if !ok {
		secrets = make(map[string]string)
		data.Services[service] = secrets
	}
	secrets[key] = value

	return f.save(data)
}

// Get retrieves a secret from the file.
// It returns [ErrNotFound] if no secret exists under the key.
func (f *File) Get(service, key string) (string, error) {
	data, err := f.load()
	if err != nil {
		return "", err
	}

	value, ok := data.Services[service][key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Delete removes a secret from the file.
// It returns [ErrNotFound] if no secret exists under the key.
func (f *File) Delete(service, key string) error {
	data, err := f.load()
	if err != nil {
		return err
	}

	if _, ok := data.Services[service][key]; !ok {
		return ErrNotFound
	}

	delete(data.Services[service], key)
	return f.save(data)
}
