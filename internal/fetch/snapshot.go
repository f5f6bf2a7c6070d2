package fetch

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strings"
	"time"

	"twitchy/internal/errors"
	"twitchy/pkg/types"
)

// Snapshot serves the Fetcher contract from a JSON export on disk.
type Snapshot struct {
	channels []*types.Channel
	videos   map[string][]*types.Video
	clips    map[string][]*types.Clip
	games    []*types.Game
	online   int
}

type snapshotFile struct {
	Channels []snapshotChannel          `json:"channels"`
	Videos   map[string][]snapshotVideo `json:"videos"`
	Clips    map[string][]snapshotClip  `json:"clips"`
	Games    []snapshotGame             `json:"games"`
}

type snapshotChannel struct {
	ID          string    `json:"id"`
	Login       string    `json:"login"`
	DisplayName string    `json:"display_name"`
	GameID      string    `json:"game_id"`
	GameName    string    `json:"game_name"`
	Title       string    `json:"title"`
	ViewerCount int       `json:"viewer_count"`
	Live        bool      `json:"live"`
	StartedAt   time.Time `json:"started_at"`
}

type snapshotVideo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Title     string    `json:"title"`
	Duration  string    `json:"duration"`
	ViewCount int       `json:"view_count"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type snapshotClip struct {
	ID          string    `json:"id"`
	BroadcastID string    `json:"broadcaster_id"`
	UserName    string    `json:"user_name"`
	CreatorName string    `json:"creator_name"`
	Title       string    `json:"title"`
	GameName    string    `json:"game_name"`
	ViewCount   int       `json:"view_count"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

type snapshotGame struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewSnapshot loads a content snapshot from path.
func NewSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.FetchFailed, "reading snapshot %s", path)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, errors.FetchFailed, "parsing snapshot %s", path)
	}

	s := &Snapshot{
		videos: make(map[string][]*types.Video),
		clips:  make(map[string][]*types.Clip),
	}
	for _, c := range file.Channels {
		s.channels = append(s.channels, &types.Channel{
			ID:          c.ID,
			Login:       c.Login,
			DisplayName: c.DisplayName,
			GameID:      c.GameID,
			GameName:    c.GameName,
			Title:       c.Title,
			ViewerCount: c.ViewerCount,
			Live:        c.Live,
			StartedAt:   c.StartedAt,
		})
	}
	for id, vs := range file.Videos {
		for _, v := range vs {
			s.videos[id] = append(s.videos[id], &types.Video{
				ID:        v.ID,
				UserID:    v.UserID,
				UserName:  v.UserName,
				Title:     v.Title,
				Duration:  v.Duration,
				ViewCount: v.ViewCount,
				VideoURL:  v.URL,
				CreatedAt: v.CreatedAt,
			})
		}
	}
	for id, cs := range file.Clips {
		for _, c := range cs {
			s.clips[id] = append(s.clips[id], &types.Clip{
				ID:          c.ID,
				BroadcastID: c.BroadcastID,
				UserName:    c.UserName,
				CreatorName: c.CreatorName,
				Title:       c.Title,
				GameName:    c.GameName,
				ViewCount:   c.ViewCount,
				ClipURL:     c.URL,
				CreatedAt:   c.CreatedAt,
			})
		}
	}
	for _, g := range file.Games {
		s.games = append(s.games, &types.Game{ID: g.ID, GameName: g.Name})
	}
	return s, nil
}

// ChannelsAndStreams returns every followed channel, live ones first
// ordered by viewers, offline ones by name.
func (s *Snapshot) ChannelsAndStreams(ctx context.Context, opts types.DisplayOptions) (*types.List, error) {
	live := make([]*types.Channel, 0, len(s.channels))
	offline := make([]*types.Channel, 0, len(s.channels))
	for _, c := range s.channels {
		if c.Live {
			live = append(live, c)
		} else {
			offline = append(offline, c)
		}
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].ViewerCount > live[j].ViewerCount })
	sort.SliceStable(offline, func(i, j int) bool { return offline[i].DisplayName < offline[j].DisplayName })

	s.online = len(live)
	list := types.NewList()
	for _, c := range live {
		list.Add(c)
	}
	for _, c := range offline {
		list.Add(c)
	}
	return list, nil
}

// Videos returns a channel's videos.
func (s *Snapshot) Videos(ctx context.Context, channelID string, opts types.DisplayOptions) ([]*types.Video, error) {
	return s.videos[channelID], nil
}

// Clips returns a channel's clips.
func (s *Snapshot) Clips(ctx context.Context, channelID string, opts types.DisplayOptions) ([]*types.Clip, error) {
	return s.clips[channelID], nil
}

// ChannelsByQuery matches channels whose login or display name
// contains the query, case-insensitively.
func (s *Snapshot) ChannelsByQuery(ctx context.Context, query string, liveOnly bool, opts types.DisplayOptions) ([]*types.Channel, error) {
	q := strings.ToLower(query)
	var out []*types.Channel
	for _, c := range s.channels {
		if liveOnly && !c.Live {
			continue
		}
		if strings.Contains(strings.ToLower(c.Login), q) || strings.Contains(strings.ToLower(c.DisplayName), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// GamesByQuery matches games whose name contains the query,
// case-insensitively.
func (s *Snapshot) GamesByQuery(ctx context.Context, query string, opts types.DisplayOptions) ([]*types.Game, error) {
	q := strings.ToLower(query)
	var out []*types.Game
	for _, g := range s.games {
		if strings.Contains(strings.ToLower(g.GameName), q) {
			out = append(out, g)
		}
	}
	return out, nil
}

// StreamsByGameID returns the live channels playing the given game.
func (s *Snapshot) StreamsByGameID(ctx context.Context, gameID string, opts types.DisplayOptions) ([]*types.Channel, error) {
	var out []*types.Channel
	for _, c := range s.channels {
		if c.Live && c.GameID == gameID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ViewerCount > out[j].ViewerCount })
	return out, nil
}

// TopStreams returns the live channels ordered by viewer count.
func (s *Snapshot) TopStreams(ctx context.Context, opts types.DisplayOptions) ([]*types.Channel, error) {
	var out []*types.Channel
	for _, c := range s.channels {
		if c.Live {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ViewerCount > out[j].ViewerCount })
	return out, nil
}

// TopGamesWithStreams groups the live channels by game.
func (s *Snapshot) TopGamesWithStreams(ctx context.Context, opts types.DisplayOptions) ([]*types.Category, error) {
	list := types.NewList()
	for _, c := range s.channels {
		list.Add(c)
	}
	return types.GroupByCategory(list), nil
}

// Online reports the live count of the last ChannelsAndStreams call.
func (s *Snapshot) Online() int {
	return s.online
}

// Close is a no-op for snapshots.
func (s *Snapshot) Close() error {
	return nil
}
