// keyhold is a command line tool that tracks which secrets live in the
// operating system's credential store, so that they can be enumerated,
// scoped to a project, and cleaned up without querying the store blindly.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/keyhold/internal/config"
	"go.abhg.dev/keyhold/internal/secret"
	"go.abhg.dev/keyhold/internal/ui"
	"go.abhg.dev/komplete"
	"go.abhg.dev/log/silog"
)

// Overridden in tests.
var (
	// _secretStore, if non-nil, is used instead of the store
	// selected by the configuration.
	_secretStore secret.Store

	_buildView = func(stdin io.Reader, stderr io.Writer, interactive bool) ui.View {
		if interactive {
			return &ui.TerminalView{R: stdin, W: stderr}
		}
		return &ui.FileView{W: stderr}
	}
)

func main() {
	logger := silog.New(os.Stderr, &silog.Options{
		Level: silog.LevelInfo,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		select {
		case <-sigc:
			logger.Info("Cleaning up. Press Ctrl-C again to exit immediately.")
			cancel()
		case <-ctx.Done():
		}
	}()

	isTerminal := isatty.IsTerminal(os.Stdin.Fd())

	var cmd mainCmd
	cfg := new(config.Config)
	parser, err := kong.New(&cmd,
		kong.Name("keyhold"),
		kong.Description("keyhold tracks which secrets live in the operating system's credential store."),
		kong.Bind(logger, cfg, &cmd.globalOptions),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(io.Reader(os.Stdin), (*io.Reader)(nil)),
		kong.Vars{
			// Default to non-interactive mode if we're not in a terminal.
			"nonInteractive": strconv.FormatBool(!isTerminal),
		},
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		panic(err)
	}

	komplete.Run(parser,
		komplete.WithPredictor("secrets", komplete.PredictFunc(predictSecrets)),
		komplete.WithPredictor("accounts", komplete.PredictFunc(predictAccounts)),
	)

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		logger.Fatalf("keyhold: %v", err)
	}

	if err := kctx.Run(); err != nil {
		logger.Fatalf("keyhold: %v", err)
	}
}

type globalOptions struct {
	NonInteractive bool `name:"non-interactive" short:"I" default:"${nonInteractive}" help:"Disable interactive prompts"`
}

type mainCmd struct {
	globalOptions

	// Flags with side effects whose values are never accessed directly.
	Verbose bool               `short:"v" help:"Enable verbose output" env:"KEYHOLD_VERBOSE"`
	Dir     kong.ChangeDirFlag `short:"C" placeholder:"DIR" help:"Change to DIR before doing anything"`
	Version versionFlag        `help:"Print version information and quit"`

	Config string `hidden:"" env:"KEYHOLD_CONFIG" help:"Path to the configuration file"`

	Secret  secretCmd  `cmd:"" aliases:"s" group:"Secrets" help:"Manage tracked secrets"`
	Account accountCmd `cmd:"" aliases:"a" group:"Accounts" help:"Manage account keys"`
	Run     runCmd     `cmd:"" group:"Environment" help:"Run a command with tracked secrets in its environment"`

	Shell      shellCmd   `cmd:"" group:"Shell" help:"Shell integration"`
	VersionCmd versionCmd `cmd:"" name:"version" help:"Print version information"`
}

func (cmd *mainCmd) AfterApply(kctx *kong.Context, log *silog.Logger, cfg *config.Config) error {
	if cmd.Verbose {
		log.SetLevel(silog.LevelDebug)
	}

	cfgPath := cmd.Config
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	loaded, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	*cfg = *loaded

	store := _secretStore
	if store == nil {
		store, err = openStore(cfg, log)
		if err != nil {
			return err
		}
	}

	view := _buildView(os.Stdin, os.Stderr, !cmd.NonInteractive)

	kctx.BindTo(store, (*secret.Store)(nil))
	kctx.BindTo(view, (*ui.View)(nil))
	return nil
}
