package track_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/keyhold/internal/track"
)

func TestLedger(t *testing.T) {
	t.Run("Store", func(t *testing.T) {
		testLedger(t, func(t *testing.T) track.Ledger {
			return &track.StoreLedger{
				Store:   new(secret.Memory),
				Service: "test-service",
				Key:     "test-tracker",
			}
		})
	})

	t.Run("File", func(t *testing.T) {
		testLedger(t, func(t *testing.T) track.Ledger {
			return &track.FileLedger{
				Path: filepath.Join(t.TempDir(), "index.json"),
			}
		})
	})
}

func testLedger(t *testing.T, newLedger func(*testing.T) track.Ledger) {
	t.Run("LoadEmpty", func(t *testing.T) {
		keys, err := newLedger(t).Load()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		ledger := newLedger(t)
		require.NoError(t, ledger.Save([]string{"alpha", "beta"}))

		keys, err := ledger.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "beta"}, keys)
	})

	t.Run("SaveReplaces", func(t *testing.T) {
		ledger := newLedger(t)
		require.NoError(t, ledger.Save([]string{"alpha", "beta"}))
		require.NoError(t, ledger.Save([]string{"beta"}))

		keys, err := ledger.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"beta"}, keys)
	})

	t.Run("Clear", func(t *testing.T) {
		ledger := newLedger(t)
		require.NoError(t, ledger.Save([]string{"alpha"}))
		require.NoError(t, ledger.Clear())

		keys, err := ledger.Load()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("ClearMissing", func(t *testing.T) {
		require.NoError(t, newLedger(t).Clear())
	})
}

func TestStoreLedgerIgnoresEmptyNames(t *testing.T) {
	store := new(secret.Memory)
	require.NoError(t,
		store.Set("test-service", "test-tracker", ",alpha,,beta,"))

	ledger := track.StoreLedger{
		Store:   store,
		Service: "test-service",
		Key:     "test-tracker",
	}

	keys, err := ledger.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, keys)
}

func TestFileLedgerCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	ledger := track.FileLedger{Path: path}

	_, err := ledger.Load()
	assert.ErrorContains(t, err, "unmarshal")
}
