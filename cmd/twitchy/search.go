package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"twitchy/internal/app"
)

// NewSearchCmd creates the search command with its channel and game
// subcommands. Without a query argument the menu prompts for one.
func NewSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search channels or games",
	}

	searchCmd.AddCommand(&cobra.Command{
		Use:   "channel [query]",
		Short: "Search channels by free-text query",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSession(cmd.Context(), func(ctx context.Context, a *app.App) (int, error) {
				return a.SearchChannels(ctx, query)
			})
		},
	})

	searchCmd.AddCommand(&cobra.Command{
		Use:   "game [query]",
		Short: "Search games or categories by free-text query",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSession(cmd.Context(), func(ctx context.Context, a *app.App) (int, error) {
				return a.SearchGames(ctx, query)
			})
		},
	})

	return searchCmd
}
