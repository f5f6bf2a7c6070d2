package types

import (
	"fmt"
	"sort"

	"twitchy/internal/format"
)

// Category is a transient grouping of live channels sharing a game
// name. It is built by GroupByCategory for one screen and discarded
// afterwards.
type Category struct {
	GameName string
	Channels *List
}

// NewCategory builds an empty category for a game name.
func NewCategory(game string) *Category {
	return &Category{GameName: game, Channels: NewList()}
}

// Key returns the game name; categories are addressed by it.
func (c *Category) Key() string { return c.GameName }

// Name returns the game name.
func (c *Category) Name() string { return c.GameName }

// URL returns the game's directory address.
func (c *Category) URL() string {
	return "https://www.twitch.tv/directory/game/" + c.GameName
}

// Playable always reports false; selecting a category drills into its
// channel list.
func (c *Category) Playable() bool { return false }

// TotalViewers sums viewer counts across the category's live channels.
func (c *Category) TotalViewers() int {
	total := 0
	for _, it := range c.Channels.Items() {
		if ch, ok := it.(*Channel); ok && ch.Live {
			total += ch.ViewerCount
		}
	}
	return total
}

// ChannelsLive counts the category's live channels.
func (c *Category) ChannelsLive() int {
	n := 0
	for _, it := range c.Channels.Items() {
		if ch, ok := it.(*Channel); ok && ch.Live {
			n++
		}
	}
	return n
}

// Line renders the category's menu entry.
func (c *Category) Line(opts DisplayOptions) string {
	live := c.ChannelsLive()
	if live == 0 {
		return fmt.Sprintf("%s %s", format.Game(c.GameName, opts.ANSI), format.Offline(opts.ANSI))
	}
	return fmt.Sprintf("%s %s %d %s viewers",
		format.Game(c.GameName, opts.ANSI),
		format.Live(opts.ANSI),
		live,
		format.Viewers(c.TotalViewers(), opts.ANSI),
	)
}

// GroupByCategory groups the list's live channels by game name. Offline
// channels are dropped. Categories come back sorted by total viewers
// descending; equal totals are ordered by game name ascending.
func GroupByCategory(list *List) []*Category {
	byGame := make(map[string]*Category)
	var order []*Category
	for _, it := range list.Items() {
		ch, ok := it.(*Channel)
		if !ok || !ch.Live {
			continue
		}
		cat, ok := byGame[ch.GameName]
		if !ok {
			cat = NewCategory(ch.GameName)
			byGame[ch.GameName] = cat
			order = append(order, cat)
		}
		cat.Channels.Add(ch)
	}
	sort.SliceStable(order, func(i, j int) bool {
		vi, vj := order[i].TotalViewers(), order[j].TotalViewers()
		if vi != vj {
			return vi > vj
		}
		return order[i].GameName < order[j].GameName
	})
	return order
}
