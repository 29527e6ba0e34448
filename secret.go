package main

import (
	"fmt"
	"os"
	"path/filepath"
)

type secretCmd struct {
	Set    secretSetCmd    `cmd:"" aliases:"add" help:"Store a secret"`
	Get    secretGetCmd    `cmd:"" help:"Print a secret"`
	List   secretListCmd   `cmd:"" aliases:"ls" help:"List tracked secrets"`
	Delete secretDeleteCmd `cmd:"" aliases:"rm" help:"Delete a secret"`
	Clear  secretClearCmd  `cmd:"" help:"Delete all tracked secrets"`
}

// scopeOptions selects the namespace a secret command operates on.
type scopeOptions struct {
	Scope string `enum:"global,project" default:"global" help:"Scope of the secret: 'global' or 'project'."`
}

// namespace returns the namespace for the selected scope.
// Project scope derives the namespace from the current directory name,
// so the same names may hold different values per project.
func (opts *scopeOptions) namespace() (string, error) {
	if opts.Scope != "project" {
		return _secretsNamespace, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine project: %w", err)
	}
	return _secretsNamespace + "." + filepath.Base(wd), nil
}
