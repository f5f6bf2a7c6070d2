// Package fetch defines the content fetch orchestrator contract the
// navigation engine consumes, plus a snapshot-backed implementation for
// offline use and tests. Remote API clients implement Fetcher
// elsewhere; this package never talks to the network.
package fetch

import (
	"context"

	"twitchy/pkg/types"
)

// Fetcher is the asynchronous content source behind every screen. The
// display options are opaque passthrough hints. Implementations do not
// retry; failures surface to the calling screen.
type Fetcher interface {
	// ChannelsAndStreams returns all followed channels with their live
	// streams.
	ChannelsAndStreams(ctx context.Context, opts types.DisplayOptions) (*types.List, error)
	// Videos returns a channel's archived videos.
	Videos(ctx context.Context, channelID string, opts types.DisplayOptions) ([]*types.Video, error)
	// Clips returns a channel's clips, in no particular order; callers
	// sort by creation time before building a list.
	Clips(ctx context.Context, channelID string, opts types.DisplayOptions) ([]*types.Clip, error)
	// ChannelsByQuery searches channels by free-text query.
	ChannelsByQuery(ctx context.Context, query string, liveOnly bool, opts types.DisplayOptions) ([]*types.Channel, error)
	// GamesByQuery searches games and categories by free-text query.
	GamesByQuery(ctx context.Context, query string, opts types.DisplayOptions) ([]*types.Game, error)
	// StreamsByGameID returns the live streams of one game.
	StreamsByGameID(ctx context.Context, gameID string, opts types.DisplayOptions) ([]*types.Channel, error)
	// TopStreams returns the most-viewed live streams.
	TopStreams(ctx context.Context, opts types.DisplayOptions) ([]*types.Channel, error)
	// TopGamesWithStreams returns the top games together with their
	// live streams.
	TopGamesWithStreams(ctx context.Context, opts types.DisplayOptions) ([]*types.Category, error)
	// Online reports the live-channel count of the last
	// ChannelsAndStreams call.
	Online() int
	// Close releases the fetcher's resources.
	Close() error
}
