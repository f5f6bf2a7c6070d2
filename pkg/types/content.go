package types

import (
	"fmt"
	"strconv"
	"time"

	"twitchy/internal/format"
)

// Video is an archived broadcast or upload from a channel.
type Video struct {
	ID        string
	UserID    string
	UserName  string
	Title     string
	Duration  string
	ViewCount int
	VideoURL  string
	CreatedAt time.Time
}

// Key returns the video id.
func (v *Video) Key() string { return v.ID }

// Name returns the video title.
func (v *Video) Name() string { return format.Sanitize(v.Title) }

// URL returns the video address.
func (v *Video) URL() string { return v.VideoURL }

// Playable reports whether the video can be handed to the player.
func (v *Video) Playable() bool { return v.VideoURL != "" }

// Line renders the video's menu entry.
func (v *Video) Line(opts DisplayOptions) string {
	title := format.Truncate(format.Sanitize(v.Title), titleMaxLen)
	return fmt.Sprintf("%s %s views %s %s",
		format.Title(title, opts.ANSI),
		format.Viewers(v.ViewCount, opts.ANSI),
		v.Duration,
		v.CreatedAt.Format("2006-01-02"),
	)
}

// Details lists the video's attributes for the info screen.
func (v *Video) Details() []format.Row {
	return []format.Row{
		{Label: "title", Value: format.Sanitize(v.Title)},
		{Label: "channel", Value: v.UserName},
		{Label: "id", Value: v.ID},
		{Label: "duration", Value: v.Duration},
		{Label: "views", Value: strconv.Itoa(v.ViewCount)},
		{Label: "created", Value: v.CreatedAt.Format(time.RFC3339)},
	}
}

// Clip is a short extract cut from a channel's stream.
type Clip struct {
	ID          string
	BroadcastID string
	UserName    string
	CreatorName string
	Title       string
	GameName    string
	ViewCount   int
	ClipURL     string
	CreatedAt   time.Time
}

// Key returns the clip id.
func (c *Clip) Key() string { return c.ID }

// Name returns the clip title.
func (c *Clip) Name() string { return format.Sanitize(c.Title) }

// URL returns the clip address.
func (c *Clip) URL() string { return c.ClipURL }

// Playable reports whether the clip can be handed to the player.
func (c *Clip) Playable() bool { return c.ClipURL != "" }

// Line renders the clip's menu entry.
func (c *Clip) Line(opts DisplayOptions) string {
	title := format.Truncate(format.Sanitize(c.Title), titleMaxLen)
	return fmt.Sprintf("%s %s views by %s %s",
		format.Title(title, opts.ANSI),
		format.Viewers(c.ViewCount, opts.ANSI),
		c.CreatorName,
		c.CreatedAt.Format("2006-01-02"),
	)
}

// Details lists the clip's attributes for the info screen.
func (c *Clip) Details() []format.Row {
	return []format.Row{
		{Label: "title", Value: format.Sanitize(c.Title)},
		{Label: "channel", Value: c.UserName},
		{Label: "creator", Value: c.CreatorName},
		{Label: "id", Value: c.ID},
		{Label: "game", Value: c.GameName},
		{Label: "views", Value: strconv.Itoa(c.ViewCount)},
		{Label: "created", Value: c.CreatedAt.Format(time.RFC3339)},
	}
}

// Game is a game or category returned by a search; it is never playable
// and always drills into its stream list.
type Game struct {
	ID       string
	GameName string
}

// Key returns the game id.
func (g *Game) Key() string { return g.ID }

// Name returns the game name.
func (g *Game) Name() string { return g.GameName }

// URL returns the game's directory address.
func (g *Game) URL() string {
	return "https://www.twitch.tv/directory/game/" + g.GameName
}

// Playable always reports false for games.
func (g *Game) Playable() bool { return false }

// Line renders the game's menu entry.
func (g *Game) Line(opts DisplayOptions) string {
	return format.Game(g.GameName, opts.ANSI)
}
