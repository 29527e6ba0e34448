package main

import (
	"fmt"
	"slices"

	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/log/silog"
)

type accountDeleteCmd struct {
	Name string `arg:"" predictor:"accounts" help:"Name of the account"`
}

func (cmd *accountDeleteCmd) Run(
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
		return fmt.Errorf("delete account key: %w", err)
	}
	tracked := slices.Contains(keys, cmd.Name)

	if err := idx.Delete(cmd.Name); err != nil {
		return fmt.Errorf("delete account key: %w", err)
	}

	if tracked {
		log.Infof("%v: account key deleted", cmd.Name)
	} else {
		log.Infof("%v: no key stored", cmd.Name)
	}
	return nil
}
