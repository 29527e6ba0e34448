package main

import (
	"fmt"
	"io"

	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/keyhold/internal/ui"
	"go.abhg.dev/log/silog"
)

type secretSetCmd struct {
	scopeOptions

	Name string `arg:"" help:"Name of the secret"`
}

func (*secretSetCmd) Help() string {
	return `Reads the secret value from stdin in non-interactive mode,
and prompts for it otherwise. The value is never echoed.`
}

func (cmd *secretSetCmd) Run(
	log *silog.Logger,
	view ui.View,
	stdin io.Reader,
	store secret.Store,
	cfg *config.Config,
) error {
	if err := validateKeyName(cmd.Name); err != nil {
		return err
	}

	value, err := readSecretValue(view, stdin, "Value for "+cmd.Name)
	if err != nil {
		return err
	}
	if value == "" {
		log.Warnf("%v: empty value, nothing stored", cmd.Name)
		return nil
	}

	namespace, err := cmd.namespace()
	if err != nil {
		return err
	}

	idx, err := openIndex(store, cfg, namespace, log)
	if err != nil {
		return err
	}

	if err := idx.Set(cmd.Name, value); err != nil {
		return fmt.Errorf("store secret: %w", err)
	}

	log.Infof("%v: secret stored", cmd.Name)
	return nil
}
