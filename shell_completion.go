package main

import (
	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/text"
	"go.abhg.dev/komplete"
	"go.abhg.dev/log/silog"
)

type shellCmd struct {
	Completion shellCompletionCmd `cmd:"" help:"Generate shell completion script"`
}

type shellCompletionCmd struct {
	*komplete.Command `embed:""`
}

func (*shellCompletionCmd) Help() string {
	return text.Dedent(`
		To set up shell completion, eval the output of this command
		from your shell's rc file.
		For example:

			# bash
			eval "$(keyhold shell completion bash)"

			# zsh
			eval "$(keyhold shell completion zsh)"

		If shell name is not provided, the current shell is guessed
		using a heuristic.
	`)
}

func predictSecrets(komplete.Args) []string {
	return predictKeys(_secretsNamespace)
}

func predictAccounts(komplete.Args) []string {
	return predictKeys(_accountsNamespace)
}

// predictKeys lists tracked keys for shell completion.
// Completion must never fail, so all errors degrade to no suggestions.
func predictKeys(namespace string) []string {
	log := silog.Nop()

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil
	}

	store := _secretStore
	if store == nil {
		store, err = openStore(cfg, log)
		if err != nil {
			return nil
		}
	}

	idx, err := openIndex(store, cfg, namespace, log)
	if err != nil {
		return nil
	}

	keys, err := idx.Keys()
	if err != nil {
		return nil
	}
	return keys
}
