// Package types holds the content entities shown by the menu screens:
// channels, streams, videos, clips, games and derived categories.
package types

import "twitchy/internal/format"

// DisplayOptions are opaque rendering hints passed through to line
// construction. Markup enables menu-side markup, ANSI enables terminal
// colors.
type DisplayOptions struct {
	Markup bool
	ANSI   bool
}

// Item is any displayable content entity. An item is playable only when
// it carries a non-empty url and its playable condition holds; only
// playable items may be handed to the player.
type Item interface {
	// Key is the stable identifier used to address the item in a List.
	Key() string
	// Name is the display name shown in status messages.
	Name() string
	// URL is the address handed to the player or browser.
	URL() string
	// Playable reports whether the item may be dispatched to the player.
	Playable() bool
	// Line renders the single-line menu representation.
	Line(opts DisplayOptions) string
}

// Detailer is implemented by items that can render an attribute table
// for the info screen.
type Detailer interface {
	Details() []format.Row
}
