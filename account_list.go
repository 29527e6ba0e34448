package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/log/silog"
)

type accountListCmd struct{}

func (cmd *accountListCmd) Run(
	app *kong.Kong,
	log *silog.Logger,
	store secret.Store,
	cfg *config.Config,
) error {
	idx, err := openIndex(store, cfg, _accountsNamespace, log)
	if err != nil {
		return err
	}

	keys, err := idx.Keys()
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	for _, key := range keys {
		fmt.Fprintln(app.Stdout, key)
	}
	return nil
}
