package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/keyhold/internal/track"
	"go.abhg.dev/keyhold/internal/ui"
	"go.abhg.dev/log/silog"
)

func TestValidateKeyName(t *testing.T) {
	tests := []struct {
		name    string
		give    string
		wantErr string
	}{
		{name: "Simple", give: "API_KEY"},
		{name: "Dotted", give: "aws.secret-key"},
		{name: "Empty", give: "", wantErr: "must not be empty"},
		{name: "Comma", give: "a,b", wantErr: "must not contain"},
		{name: "Space", give: "a b", wantErr: "must not contain"},
		{name: "Newline", give: "a\nb", wantErr: "must not contain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateKeyName(tt.give)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestSuggestKey(t *testing.T) {
	keys := []string{"API_KEY", "DB_PASSWORD", "TOKEN"}

	got, ok := suggestKey("DB_PASWORD", keys)
	require.True(t, ok)
	assert.Equal(t, "DB_PASSWORD", got)

	_, ok = suggestKey("zzz", keys)
	assert.False(t, ok)
}

func TestReadSecretValueNonInteractive(t *testing.T) {
	view := &ui.FileView{W: new(strings.Builder)}

	got, err := readSecretValue(view, strings.NewReader("hunter2\n"), "Value")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

func TestOpenIndexBackends(t *testing.T) {
	store := new(secret.Memory)
	log := silog.Nop()

	t.Run("Keyring", func(t *testing.T) {
		cfg := config.Default()

		idx, err := openIndex(store, cfg, "secrets", log)
		require.NoError(t, err)
		assert.IsType(t, &track.StoreLedger{}, idx.Ledger)
	})

	t.Run("File", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", t.TempDir())
		cfg := &config.Config{Backend: config.BackendFile}

		idx, err := openIndex(store, cfg, "secrets", log)
		require.NoError(t, err)
		assert.IsType(t, &track.FileLedger{}, idx.Ledger)
	})
}
