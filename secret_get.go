package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/log/silog"
)

type secretGetCmd struct {
	scopeOptions

	Name string `arg:"" predictor:"secrets" help:"Name of the secret"`
}

func (*secretGetCmd) Help() string {
	return `Prints the secret value to stdout.
Fails if the secret is not tracked or its value is gone from the store.`
}

func (cmd *secretGetCmd) Run(
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

	value, err := idx.Get(cmd.Name)
	if err != nil {
		return fmt.Errorf("get secret: %w", err)
	}
	if value == "" {
		if keys, err := idx.Keys(); err == nil {
			if suggestion, ok := suggestKey(cmd.Name, keys); ok {
				log.Infof("Did you mean %v?", suggestion)
			}
		}
		return fmt.Errorf("%v: no secret stored", cmd.Name)
	}

	fmt.Fprintln(app.Stdout, value)
	return nil
}
