package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/log/silog"
)

type secretListCmd struct {
	scopeOptions
}

func (*secretListCmd) Help() string {
	return `Prints the names of tracked secrets, one per line.
Values are never printed.`
}

func (cmd *secretListCmd) Run(
	app *kong.Kong,
	log *silog.Logger,
	store secret.Store,
	cfg *config.Config,
) error {
	namespace, err := cmd.namespace()
	if err != nil {
		return err
	}

	idx, err := openIndex(store, cfg, namespace, log)
	if err != nil {
		return err
	}

	keys, err := idx.Keys()
	if err != nil {
		return fmt.Errorf("list secrets: %w", err)
	}

	for _, key := range keys {
		fmt.Fprintln(app.Stdout, key)
	}
	return nil
}
