package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/keyhold/internal/secret/secrettest"
	"go.abhg.dev/log/silog"
)

var (
	_update = flag.Bool("update", false, "update golden files")
	_debug  = flag.Bool("debug", false, "enable debug logging")
)

func TestMain(m *testing.M) {
	// Always override the secret store with a memory store
	// so that tests don't accidentally use the system keychain.
	_secretStore = new(secret.Memory)

	os.Exit(testscript.RunMain(m, map[string]func() int{
		"keyhold": func() int {
			logger := silog.New(os.Stderr, &silog.Options{
				Level: silog.LevelDebug,
			})

			// If a secret server is configured, use it.
			// Otherwise fall back to the configured backend;
			// HOME is sandboxed by the test script.
			if srvURL := os.Getenv("KEYHOLD_SECRET_SERVER"); srvURL != "" {
				client, err := secrettest.NewClient(srvURL)
				if err != nil {
					logger.Fatalf("Could not create secret client: %v", err)
				}
				_secretStore = client
			} else {
				_secretStore = nil
			}

			main()
			return 0
		},
		// "true" is a no-op command that always succeeds.
		"true": func() int { return 0 },
	}))
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                filepath.Join("testdata", "script"),
		UpdateScripts:      *_update,
		RequireUniqueNames: true,
		Setup: func(e *testscript.Env) error {
			t := e.T().(testing.TB)

			homeDir := filepath.Join(e.WorkDir, "home")
			require.NoError(t, os.Mkdir(homeDir, 0o755))
			e.Setenv("HOME", homeDir)
			e.Setenv("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config"))
			e.Setenv("XDG_DATA_HOME", filepath.Join(homeDir, ".local", "share"))

			if *_debug {
				e.Setenv("KEYHOLD_VERBOSE", "true")
			}

			secretServer := secrettest.NewServer(t)
			e.Setenv("KEYHOLD_SECRET_SERVER", secretServer.URL())
			return nil
		},
	})
}
