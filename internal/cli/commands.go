package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/controller"
	"github.com/idilsaglam/shoplist/internal/render/markdown"
	"github.com/idilsaglam/shoplist/internal/render/text"
	"github.com/idilsaglam/shoplist/internal/shell"
	"github.com/idilsaglam/shoplist/internal/tui"
	"github.com/idilsaglam/shoplist/internal/ui"
)

func (a *app) newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive list (default)",
		Long: heredoc.Doc(`
			Keys:
			  a       add an item
			  space   check or uncheck
			  e       edit the selected item's name
			  d       delete
			  h       hide or show checked items
			  y       copy the visible list as Markdown
			  q       quit
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}
}

func (a *app) runTUI() error {
	s, err := a.newStore()
	if err != nil {
		return err
	}
	return tui.Run(s, a.controllerOptions()...)
}

func (a *app) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Edit the list with typed commands",
		Long:  heredoc.Doc(`Reads one command per line from stdin.`) + "\n" + shell.Help,
		Example: heredoc.Doc(`
			$ shoplist shell
			> add eggs
			> check 1
			> filter
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newStore()
			if err != nil {
				return err
			}
			r := text.New(cmd.OutOrStdout(), s)
			ctrl := controller.New(s, r, a.controllerOptions()...)
			return shell.New(ctrl, r, cmd.OutOrStdout()).Run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

type printOptions struct {
	format string
	style  string
	raw    bool
}

func (a *app) newPrintCmd() *cobra.Command {
	var opts printOptions
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the starting list once and exit",
		Long: heredoc.Doc(`
			Renders the seed list from your config. --format markdown writes a task
			list styled with glamour (dark, light, dracula, notty); --raw skips styling.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newStore()
			if err != nil {
				return err
			}

			var r controller.Renderer
			switch opts.format {
			case "text":
				r = text.New(cmd.OutOrStdout(), s)
			case "markdown", "md":
				var mopts []markdown.Option
				if !opts.raw {
					style := opts.style
					if style == "" {
						style = a.cfg.GlamourStyle
					}
					mopts = append(mopts, markdown.WithStyle(style, 0))
				}
				mr, err := markdown.New(cmd.OutOrStdout(), mopts...)
				if err != nil {
					return err
				}
				r = mr
			default:
				return usageError{fmt.Errorf("unknown format %q (want text or markdown)", opts.format)}
			}

			controller.New(s, r, a.controllerOptions()...).Refresh()
			if mr, ok := r.(*markdown.Renderer); ok && mr.Err() != nil {
				return fmt.Errorf("style output: %w", mr.Err())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text or markdown")
	cmd.Flags().StringVar(&opts.style, "style", "", "glamour style for markdown output (default from config)")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "write plain Markdown without styling")
	return cmd
}

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := a.home()
			if err != nil {
				return fmt.Errorf("home: %w", err)
			}
			path, err := config.WriteDefault(home)
			if err != nil {
				return err
			}
			ui.OK("config at " + path)
			return nil
		},
	}
}
