// Package menu provides the keybind registry and the selection menu
// adapter. The engine talks to a Menu interface; the concrete backends
// wrap external menu programs (rofi, fzf) as child processes.
package menu

import (
	"context"
	"fmt"
	"strings"

	"twitchy/internal/errors"
)

// Result codes shared with the menu backends. Keybind codes start at
// KeycodeBase.
const (
	Confirm = 0
	Cancel  = 1
)

// SelectRequest describes one render of the selection menu.
type SelectRequest struct {
	Lines       []string // Menu entries, one per line
	Mesg        string   // Status message shown above the entries
	Prompt      string
	MultiSelect bool
	Keybinds    []*Keybind // Active keybinds, wired as custom keys
}

// SelectResult is the outcome of one render: the chosen entry indices
// (empty when nothing was chosen) and the result code.
type SelectResult struct {
	Indices []int
	Code    int
}

// Menu is the selection menu adapter. It blocks until the user
// confirms, cancels or triggers one of the request's keybinds.
type Menu interface {
	Select(ctx context.Context, req SelectRequest) (SelectResult, error)
	Input(ctx context.Context, prompt, mesg string) (string, error)
}

// New returns the menu backend selected by name.
func New(backend string, lines int) (Menu, error) {
	switch backend {
	case "rofi":
		return &Rofi{Lines: lines}, nil
	case "fzf":
		return &Fzf{}, nil
	default:
		return nil, errors.Newf(errors.InvalidConfig, "unsupported menu backend: %q", backend)
	}
}

// hints renders the visible keybinds as help lines appended to the
// status message.
func hints(mesg string, keybinds []*Keybind) string {
	var b strings.Builder
	b.WriteString(mesg)
	for _, k := range keybinds {
		if k.Hidden {
			continue
		}
		fmt.Fprintf(&b, "\nUse <%s> %s", k.Bind, k.Description)
	}
	return b.String()
}
