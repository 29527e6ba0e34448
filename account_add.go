package main

import (
	"fmt"
	"io"

	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/keyhold/internal/ui"
	"go.abhg.dev/log/silog"
)

type accountAddCmd struct {
	Name string `arg:"" help:"Name of the account"`
}

func (*accountAddCmd) Help() string {
	return `Reads the account key from stdin in non-interactive mode,
and prompts for it otherwise.`
}

func (cmd *accountAddCmd) Run(
	log *silog.Logger,
	view ui.View,
	stdin io.Reader,
	store secret.Store,
	cfg *config.Config,
) error {
	if err := validateKeyName(cmd.Name); err != nil {
		return err
	}

	value, err := readSecretValue(view, stdin, "Key for "+cmd.Name)
	if err != nil {
		return err
	}
	if value == "" {
		log.Warnf("%v: empty key, nothing stored", cmd.Name)
		return nil
	}

	idx, err := openIndex(store, cfg, _accountsNamespace, log)
	if err != nil {
		return err
	}

	if err := idx.Set(cmd.Name, value); err != nil {
		return fmt.Errorf("store account key: %w", err)
	}

	log.Infof("%v: account key stored", cmd.Name)
	return nil
}
