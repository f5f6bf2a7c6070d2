package main

import (
	"context"

	"github.com/spf13/cobra"

	"twitchy/internal/app"
)

// NewMultiCmd creates the multi command: pick several streams and play
// them all at once.
func NewMultiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "multi",
		Short: "Select multiple streams and play them concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context(), func(ctx context.Context, a *app.App) (int, error) {
				return a.MultiSelect(ctx)
			})
		},
	}
}
