package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"twitchy/internal/app"
	"twitchy/internal/config"
	"twitchy/internal/errors"
	"twitchy/internal/fetch"
	"twitchy/internal/log"
	"twitchy/internal/menu"
	"twitchy/internal/player"
	"twitchy/pkg/types"
)

var (
	cfgFile      string
	cfg          *config.Config
	debug        bool
	menuBackend  string
	snapshotPath string
	noMarkup     bool
	noANSI       bool
)

// exitError carries a non-zero engine result code out through cobra.
// Cancelling a screen exits 1 without an error message.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "twitchy",
		Short: "Menu-driven Twitch content browser",
		Long: `Twitchy browses followed channels, live streams, videos, clips and
categories through an external menu program and plays selections in an
external media player.

Running without a subcommand browses your followed channels.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetDebug(debug)

			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}

			// Flags override the config file.
			if menuBackend != "" {
				cfg.Menu.Backend = menuBackend
			}
			if snapshotPath != "" {
				cfg.Snapshot = snapshotPath
			}
			if noMarkup {
				cfg.Display.Markup = false
			}
			if noANSI {
				cfg.Display.ANSI = false
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context(), func(ctx context.Context, a *app.App) (int, error) {
				return a.Run(ctx)
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/twitchy/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&menuBackend, "menu", "", "menu backend: rofi or fzf")
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "path to an offline content snapshot")
	rootCmd.PersistentFlags().BoolVar(&noMarkup, "no-markup", false, "disable menu markup")
	rootCmd.PersistentFlags().BoolVar(&noANSI, "no-ansi", false, "disable terminal colors")

	rootCmd.AddCommand(NewTopCmd())
	rootCmd.AddCommand(NewSearchCmd())
	rootCmd.AddCommand(NewMultiCmd())

	return rootCmd
}

// newApp assembles the engine and its collaborators from the loaded
// configuration.
func newApp() (*app.App, fetch.Fetcher, error) {
	fetcher, err := newFetcher()
	if err != nil {
		return nil, nil, err
	}

	m, err := menu.New(cfg.Menu.Backend, cfg.Menu.Lines)
	if err != nil {
		return nil, nil, err
	}

	opts := types.DisplayOptions{Markup: cfg.Display.Markup, ANSI: cfg.Display.ANSI}
	a := app.New(fetcher, m, menu.NewRegistry(), player.New(cfg.Player.Command, cfg.Player.Args), cfg.Keys, opts, cfg.Menu.Prompt)
	if err := a.RegisterKeybinds(); err != nil {
		return nil, nil, err
	}
	return a, fetcher, nil
}

func newFetcher() (fetch.Fetcher, error) {
	if cfg.Snapshot == "" {
		return nil, errors.New(errors.InvalidConfig,
			"no content source configured: set snapshot in the config file or pass --snapshot")
	}
	return fetch.NewSnapshot(cfg.Snapshot)
}

// runSession runs one screen entry point and maps its result code to
// the process exit code.
func runSession(ctx context.Context, run func(context.Context, *app.App) (int, error)) error {
	a, fetcher, err := newApp()
	if err != nil {
		return err
	}
	defer fetcher.Close()

	code, err := run(ctx, a)
	if err != nil {
		return err
	}
	if code != 0 {
		log.Debugf("session ended with code %d", code)
		return exitError{code: code}
	}
	return nil
}
