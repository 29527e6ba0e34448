package main

import (
	"fmt"
	"slices"

	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/log/silog"
)

type secretDeleteCmd struct {
	scopeOptions

	Name string `arg:"" predictor:"secrets" help:"Name of the secret"`
}

func (*secretDeleteCmd) Help() string {
	return `Deleting a secret that does not exist is not an error.`
}

func (cmd *secretDeleteCmd) Run(
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
		return fmt.Errorf("delete secret: %w", err)
	}
	tracked := slices.Contains(keys, cmd.Name)

	// Delete even if untracked to scrub stale store entries.
	if err := idx.Delete(cmd.Name); err != nil {
		return fmt.Errorf("delete secret: %w", err)
	}

	if tracked {
		log.Infof("%v: secret deleted", cmd.Name)
	} else {
		log.Infof("%v: no secret stored", cmd.Name)
		if suggestion, ok := suggestKey(cmd.Name, keys); ok {
			log.Infof("Did you mean %v?", suggestion)
		}
	}
	return nil
}
