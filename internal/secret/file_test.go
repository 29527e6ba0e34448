package secret

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/log/silog/silogtest"
)

func TestFileEmptyDeletesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	store := File{
		Path: path,
		Log:  silogtest.New(t),
	}

	// Saving an empty store must not create the file.
	require.NoError(t, store.save(new(fileData)))
	assert.NoFileExists(t, path)

	require.NoError(t, store.Set("service", "key", "secret"))
	assert.FileExists(t, path)

	// Deleting the last secret removes the file.
	require.NoError(t, store.Delete("service", "key"))
	assert.NoFileExists(t, path)
}

func TestFileCannotReadOrWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	// Creating a directory where the file should be
	// will prevent the file from being created.
	require.NoError(t, os.Mkdir(path, 0o700))

	store := File{
		Path: path,
		Log:  silogtest.New(t),
	}

	t.Run("Set", func(t *testing.T) {
		require.Error(t, store.Set("service", "key", "secret"))
	})

	t.Run("Get", func(t *testing.T) {
		_, err := store.Get("service", "key")
		require.Error(t, err)
	})

	t.Run("Delete", func(t *testing.T) {
		require.Error(t, store.Delete("service", "key"))
	})
}

func TestFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store := File{
		Path: path,
		Log:  silogtest.New(t),
	}

	_, err := store.Get("service", "key")
	assert.ErrorContains(t, err, "unmarshal")
}
