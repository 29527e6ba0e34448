package main

// Account keys are secrets tracked in their own namespace,
// separate from regular secrets so that tooling can enumerate
// just the accounts that have keys on this machine.
type accountCmd struct {
	Add    accountAddCmd    `cmd:"" help:"Store an account key"`
	List   accountListCmd   `cmd:"" aliases:"ls" help:"List accounts with stored keys"`
	Delete accountDeleteCmd `cmd:"" aliases:"rm" help:"Delete an account key"`
}
