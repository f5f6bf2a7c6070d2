package fetch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitchy/internal/errors"
	"twitchy/internal/fetch"
	"twitchy/pkg/types"
)

const snapshotFixture = `{
  "channels": [
    {"id": "1", "login": "alpha", "display_name": "Alpha", "game_id": "g1", "game_name": "Rust", "title": "building", "viewer_count": 120, "live": true, "started_at": "2026-08-28T10:00:00Z"},
    {"id": "2", "login": "beta", "display_name": "Beta", "game_id": "g1", "game_name": "Rust", "title": "raiding", "viewer_count": 900, "live": true, "started_at": "2026-08-28T09:00:00Z"},
    {"id": "3", "login": "gamma", "display_name": "Gamma", "game_id": "g2", "game_name": "Chess", "viewer_count": 0, "live": false}
  ],
  "videos": {
    "3": [
      {"id": "v1", "user_id": "3", "user_name": "Gamma", "title": "endgames", "duration": "1h2m", "view_count": 40, "url": "https://vods/v1", "created_at": "2026-08-20T00:00:00Z"}
    ]
  },
  "clips": {
    "1": [
      {"id": "c1", "user_name": "Alpha", "title": "old", "view_count": 5, "url": "https://clips/c1", "created_at": "2026-08-01T00:00:00Z"},
      {"id": "c2", "user_name": "Alpha", "title": "new", "view_count": 9, "url": "https://clips/c2", "created_at": "2026-08-25T00:00:00Z"}
    ]
  },
  "games": [
    {"id": "g1", "name": "Rust"},
    {"id": "g2", "name": "Chess"}
  ]
}`

func loadFixture(t *testing.T) *fetch.Snapshot {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotFixture), 0644))
	s, err := fetch.NewSnapshot(path)
	require.NoError(t, err)
	return s
}

func TestNewSnapshotMissingFile(t *testing.T) {
	_, err := fetch.NewSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.IsFetchFailed(err))
}

func TestChannelsAndStreams(t *testing.T) {
	s := loadFixture(t)
	opts := types.DisplayOptions{}

	list, err := s.ChannelsAndStreams(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, 3, list.Len())
	assert.Equal(t, 2, s.Online())

	// Live channels first, ordered by viewers, then offline by name.
	assert.Equal(t, []string{"2", "1", "3"}, list.Keys())
}

func TestChannelsByQuery(t *testing.T) {
	s := loadFixture(t)
	opts := types.DisplayOptions{}

	t.Run("matches login case-insensitively", func(t *testing.T) {
		out, err := s.ChannelsByQuery(context.Background(), "ALPH", false, opts)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Alpha", out[0].Name())
	})

	t.Run("liveOnly drops offline matches", func(t *testing.T) {
		out, err := s.ChannelsByQuery(context.Background(), "gamma", true, opts)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestStreamsByGameID(t *testing.T) {
	s := loadFixture(t)

	out, err := s.StreamsByGameID(context.Background(), "g1", types.DisplayOptions{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Beta", out[0].Name(), "ordered by viewer count")

	out, err = s.StreamsByGameID(context.Background(), "g2", types.DisplayOptions{})
	require.NoError(t, err)
	assert.Empty(t, out, "offline channels are not streams")
}

func TestTopGamesWithStreams(t *testing.T) {
	s := loadFixture(t)

	cats, err := s.TopGamesWithStreams(context.Background(), types.DisplayOptions{})
	require.NoError(t, err)
	require.Len(t, cats, 1, "only games with live channels appear")
	assert.Equal(t, "Rust", cats[0].Name())
	assert.Equal(t, 1020, cats[0].TotalViewers())
	assert.Equal(t, 2, cats[0].ChannelsLive())
}

func TestVideosAndClips(t *testing.T) {
	s := loadFixture(t)

	videos, err := s.Videos(context.Background(), "3", types.DisplayOptions{})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "endgames", videos[0].Name())

	clips, err := s.Clips(context.Background(), "1", types.DisplayOptions{})
	require.NoError(t, err)
	assert.Len(t, clips, 2)

	none, err := s.Clips(context.Background(), "999", types.DisplayOptions{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGamesByQuery(t *testing.T) {
	s := loadFixture(t)

	games, err := s.GamesByQuery(context.Background(), "rust", types.DisplayOptions{})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "g1", games[0].Key())
}
