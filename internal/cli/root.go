package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/controller"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// usageError marks failures that should exit with code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// app carries what every subcommand needs after flags and config are read.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	home    func() (string, error)

	stdin          io.Reader
	stdout, stderr io.Writer

	cfg *config.Config
	log *log.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	a := &app{
		v:      config.New(),
		home:   os.UserHomeDir,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	return a.run(args)
}

func (a *app) run(args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shoplist",
		Short: "A shopping list for the terminal",
		Long: heredoc.Doc(`
			Keep a shopping list in memory while you shop.

			Nothing is saved: every session starts from the seed list in your config
			(apples, oranges, milk, bread unless you change it).
		`),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}
	root.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return usageError{fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
		}
		return nil
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.shoplist/config.yaml)")
	flags.String("theme", "classic", "colour theme: classic, neon or mono")
	flags.Bool("hide-checked", false, "start with checked items hidden")
	flags.String("id-strategy", "uuid", "item id generator: uuid or seq")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log every command to stderr")
	_ = a.v.BindPFlag("theme", flags.Lookup("theme"))
	_ = a.v.BindPFlag("hide_checked", flags.Lookup("hide-checked"))
	_ = a.v.BindPFlag("id_strategy", flags.Lookup("id-strategy"))

	root.AddCommand(
		a.newTUICmd(),
		a.newShellCmd(),
		a.newPrintCmd(),
		a.newInitCmd(),
	)
	return root
}

func (a *app) setup() error {
	home, err := a.home()
	if err != nil {
		return fmt.Errorf("home: %w", err)
	}
	cfg, err := config.Load(a.v, home, a.cfgFile)
	if err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			return usageError{err}
		}
		return err
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return usageError{err}
	}
	a.cfg = cfg

	a.log = log.New(io.Discard, "", 0)
	if a.verbose {
		a.log = log.New(a.stderr, "shoplist: ", log.Ltime)
	}
	return nil
}

func (a *app) newStore() (*store.Store, error) {
	opts, err := a.cfg.StoreOptions()
	if err != nil {
		return nil, usageError{err}
	}
	return store.New(opts...), nil
}

func (a *app) controllerOptions() []controller.Option {
	return []controller.Option{controller.WithLogger(a.log)}
}
