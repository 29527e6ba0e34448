package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/keyhold/internal/track"
	"go.abhg.dev/keyhold/internal/ui"
	"go.abhg.dev/log/silog"
)

// _service identifies keyhold's entries in the credential store.
const _service = "keyhold"

// Namespaces partition tracked secrets.
// Each namespace gets its own tracker entry.
const (
	_secretsNamespace  = "secrets"
	_accountsNamespace = "accounts"
)

func trackerKey(namespace string) string {
	return "keyhold-" + namespace
}

// openStore selects the secret store for the configured backend:
// the system keychain with a plain-text file as a fallback for
// platforms where the keychain is unavailable,
// or the plain-text file alone if the configuration demands it.
func openStore(cfg *config.Config, log *silog.Logger) (secret.Store, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, err
	}

	file := &secret.File{
		Path: filepath.Join(dataDir, "secrets.json"),
		Log:  log,
	}

	if cfg.Backend == config.BackendFile {
		return file, nil
	}

	return &secret.Fallback{
		Primary:   new(secret.Keyring),
		Secondary: file,
	}, nil
}

// openIndex builds the tracked key index for a namespace.
func openIndex(
	store secret.Store,
	cfg *config.Config,
	namespace string,
	log *silog.Logger,
) (*track.Index, error) {
	var ledger track.Ledger
	if cfg.Backend == config.BackendFile {
		dataDir, err := config.DataDir()
		if err != nil {
			return nil, err
		}
		ledger = &track.FileLedger{
			Path: filepath.Join(dataDir, "index", namespace+".json"),
		}
	} else {
		ledger = &track.StoreLedger{
			Store:   store,
			Service: _service,
			Key:     trackerKey(namespace),
		}
	}

	return &track.Index{
		Store:   store,
		Ledger:  ledger,
		Service: _service,
		Log:     log,
	}, nil
}

// validateKeyName rejects names that the tracker entry cannot represent.
func validateKeyName(name string) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if strings.ContainsAny(name, ", \t\r\n") {
		return fmt.Errorf("invalid name %q: must not contain commas or whitespace", name)
	}
	return nil
}

// readSecretValue obtains a secret value from the user:
// interactively with a hidden prompt when the view allows it,
// and by reading stdin until EOF otherwise.
func readSecretValue(view ui.View, stdin io.Reader, title string) (string, error) {
	if ui.Interactive(view) {
		var value string
		prompt := ui.NewInput().
			WithTitle(title).
			WithSecret().
			WithValue(&value)
		if err := ui.Run(view, prompt); err != nil {
			return "", err
		}
		return value, nil
	}

	bs, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(string(bs), "\r\n"), nil
}

// suggestKey returns the tracked key most similar to name, if any.
func suggestKey(name string, keys []string) (string, bool) {
	matches := fuzzy.Find(name, keys)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
