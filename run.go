package main

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/log/silog"
)

type runCmd struct {
	scopeOptions

	Env bool `help:"Export tracked secrets even if disabled in the configuration"`

	Args []string `arg:"" optional:"" passthrough:"" help:"Command to run"`
}

func (*runCmd) Help() string {
	return `Runs the command with each tracked secret exported as an
environment variable named after the secret.
The export happens only if setEnvVars is enabled in the
configuration or --env is given.`
}

func (cmd *runCmd) Run(
	ctx context.Context,
	log *silog.Logger,
	store secret.Store,
	cfg *config.Config,
) error {
	if len(cmd.Args) == 0 {
		return errors.New("no command given")
	}

	environ := os.Environ()
	if cfg.SetEnvVars || cmd.Env {
		namespace, err := cmd.namespace()
		if err != nil {
			return err
		}

		idx, err := openIndex(store, cfg, namespace, log)
		if err != nil {
			return err
		}

		for key, value := range idx.All() {
			environ = append(environ, key+"="+value)
		}
	} else {
		log.Debug("Secret export disabled; enable setEnvVars in the configuration or pass --env")
	}

	child := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	child.Env = environ
	return child.Run()
}
