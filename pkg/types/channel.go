package types

import (
	"fmt"
	"strconv"
	"time"

	"twitchy/internal/format"
)

const (
	streamBaseURL = "https://www.twitch.tv/"
	titleMaxLen   = 80
)

// Channel is a followed channel or a live stream. A live channel is
// playable; an offline one is not and opens its video list instead.
type Channel struct {
	ID          string
	Login       string
	DisplayName string
	GameID      string
	GameName    string
	Title       string
	ViewerCount int
	Live        bool
	StartedAt   time.Time
}

// Key returns the broadcaster id.
func (c *Channel) Key() string { return c.ID }

// Name returns the broadcaster display name.
func (c *Channel) Name() string { return c.DisplayName }

// URL returns the channel's stream address.
func (c *Channel) URL() string {
	if c.Login == "" {
		return ""
	}
	return streamBaseURL + c.Login
}

// ChatURL returns the channel's chat address. Only meaningful while live.
func (c *Channel) ChatURL() string {
	if c.Login == "" {
		return ""
	}
	return streamBaseURL + c.Login + "/chat"
}

// Playable reports whether the channel can be handed to the player.
func (c *Channel) Playable() bool {
	return c.Live && c.URL() != ""
}

// Line renders the channel's menu entry.
func (c *Channel) Line(opts DisplayOptions) string {
	if !c.Live {
		return fmt.Sprintf("%s %s", format.Name(c.DisplayName, opts.ANSI), format.Offline(opts.ANSI))
	}
	title := format.Truncate(format.Sanitize(c.Title), titleMaxLen)
	return fmt.Sprintf("%s %s %s %s (%s) %s",
		format.Name(c.DisplayName, opts.ANSI),
		format.Live(opts.ANSI),
		format.Viewers(c.ViewerCount, opts.ANSI),
		format.Title(title, opts.ANSI),
		format.Elapsed(c.StartedAt),
		format.Game(c.GameName, opts.ANSI),
	)
}

// Details lists the channel's attributes for the info screen.
func (c *Channel) Details() []format.Row {
	return []format.Row{
		{Label: "name", Value: c.DisplayName},
		{Label: "login", Value: c.Login},
		{Label: "id", Value: c.ID},
		{Label: "title", Value: format.Sanitize(c.Title)},
		{Label: "game", Value: c.GameName},
		{Label: "viewers", Value: strconv.Itoa(c.ViewerCount)},
		{Label: "live", Value: strconv.FormatBool(c.Live)},
		{Label: "chat", Value: c.ChatURL()},
	}
}
