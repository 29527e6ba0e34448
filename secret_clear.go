package main

import (
	"errors"
	"fmt"

	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/keyhold/internal/ui"
	"go.abhg.dev/log/silog"
)

type secretClearCmd struct {
	scopeOptions

	Force bool `help:"Do not ask for confirmation"`
}

func (*secretClearCmd) Help() string {
	return `Deletes every tracked secret in the selected scope,
including the tracker entry itself.
Asks for confirmation unless --force is given.`
}

func (cmd *secretClearCmd) Run(
	log *silog.Logger,
	view ui.View,
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
		return fmt.Errorf("clear secrets: %w", err)
	}
	if len(keys) == 0 {
		log.Info("No secrets stored")
		return nil
	}

	if !cmd.Force {
		if !ui.Interactive(view) {
			return errors.New("use --force to delete secrets non-interactively")
		}

		confirmed := false
		prompt := ui.NewConfirm().
			WithTitle(fmt.Sprintf("Delete %d tracked secrets?", len(keys))).
			WithValue(&confirmed)
		if err := ui.Run(view, prompt); err != nil {
			return err
		}
		if !confirmed {
			log.Info("Nothing deleted")
			return nil
		}
	}

	if err := idx.Clear(); err != nil {
		return fmt.Errorf("clear secrets: %w", err)
	}

	log.Infof("Deleted %v secrets", len(keys))
	return nil
}
