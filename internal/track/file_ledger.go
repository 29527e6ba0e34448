package track

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileLedger is a [Ledger] that persists the tracked key names
// as a JSON document in a file on disk.
// The file holds only key names, never secret values.
type FileLedger struct {
	// Path to the ledger file.
	Path string // required
}

var _ Ledger = (*FileLedger)(nil)

type fileLedgerData struct {
	Keys []string `json:"keys"`
}

// Load returns the tracked key names.
// A missing file is an empty ledger.
func (l *FileLedger) Load() ([]string, error) {
	bs, err := os.ReadFile(l.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read: %w", err)
	}

	var data fileLedgerData
	if err := json.Unmarshal(bs, &data); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return data.Keys, nil
}

// Save replaces the tracked key names,
// rewriting the whole file in place.
func (l *FileLedger) Save(keys []string) error {
	bs, err := json.Marshal(fileLedgerData{Keys: keys})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.Path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	if err := os.WriteFile(l.Path, bs, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Clear removes the ledger file.
func (l *FileLedger) Clear() error {
	if err := os.Remove(l.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
