package main

import (
	"context"

	"github.com/spf13/cobra"

	"twitchy/internal/app"
)

// NewTopCmd creates the top command with its streams and games
// subcommands.
func NewTopCmd() *cobra.Command {
	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Browse top streams and games",
	}

	topCmd.AddCommand(&cobra.Command{
		Use:   "streams",
		Short: "Browse the most-viewed live streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context(), func(ctx context.Context, a *app.App) (int, error) {
				return a.TopStreams(ctx)
			})
		},
	})

	topCmd.AddCommand(&cobra.Command{
		Use:   "games",
		Short: "Browse top games and their live streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context(), func(ctx context.Context, a *app.App) (int, error) {
				return a.TopGames(ctx)
			})
		},
	})

	return topCmd
}
