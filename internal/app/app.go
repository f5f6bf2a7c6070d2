// Package app implements the navigation and dispatch engine: the loop
// that renders a content list through the menu adapter, interprets the
// user's response and resolves it into playback, a drill-down screen,
// a keybind action or an exit code.
package app

import (
	"context"
	"fmt"
	"strings"

	"twitchy/internal/browser"
	"twitchy/internal/clipboard"
	"twitchy/internal/config"
	"twitchy/internal/errors"
	"twitchy/internal/fetch"
	"twitchy/internal/log"
	"twitchy/internal/menu"
	"twitchy/internal/player"
	"twitchy/pkg/types"
)

// App drives a single navigation session. Exactly one screen awaits a
// result at any time; the keybind registry is mutated only between the
// menu's blocking calls.
type App struct {
	fetch    fetch.Fetcher
	menu     menu.Menu
	registry *menu.Registry
	player   player.Player
	keys     config.Keys
	opts     types.DisplayOptions
	prompt   string

	// Collaborator seams, replaceable in tests.
	copyText func(string) error
	openURL  func(string) error
}

// New wires the engine to its collaborators.
func New(f fetch.Fetcher, m menu.Menu, reg *menu.Registry, p player.Player, keys config.Keys, opts types.DisplayOptions, prompt string) *App {
	return &App{
		fetch:    f,
		menu:     m,
		registry: reg,
		player:   p,
		keys:     keys,
		opts:     opts,
		prompt:   prompt,
		copyText: clipboard.Copy,
		openURL:  browser.Open,
	}
}

// RegisterKeybinds activates the full configured keybind set. Called
// once at startup; screens narrow the set afterwards.
func (a *App) RegisterKeybinds() error {
	return a.registry.RegisterAll(a.Keybinds(), false)
}

// Keybinds builds the configured keybind set, each bound to one of the
// engine's actions. Codes start at KeycodeBase and stay stable for the
// process lifetime.
func (a *App) Keybinds() []*menu.Keybind {
	code := menu.KeycodeBase
	next := func() int { c := code; code++; return c }
	return []*menu.Keybind{
		{Code: next(), Bind: a.keys.Videos, Description: "to show videos", Action: a.videosAction},
		{Code: next(), Bind: a.keys.Clips, Description: "to show clips", Action: a.clipsAction},
		{Code: next(), Bind: a.keys.Chat, Description: "to open chat", Action: a.chatAction},
		{Code: next(), Bind: a.keys.Information, Description: "to show information", Action: a.infoAction},
		{Code: next(), Bind: a.keys.GroupByCategory, Description: "to group by category", Action: a.groupAction},
		{Code: next(), Bind: a.keys.SearchByGame, Description: "to search games", Action: a.searchGameAction},
		{Code: next(), Bind: a.keys.SearchByQuery, Description: "to search channels", Action: a.searchQueryAction},
		{Code: next(), Bind: a.keys.TopStreams, Description: "to show top streams", Action: a.topStreamsAction},
		{Code: next(), Bind: a.keys.TopGames, Description: "to show top games", Action: a.topGamesAction},
		{Code: next(), Bind: a.keys.MultiSelection, Description: "to multi-select streams", Action: a.multiAction},
		{Code: next(), Bind: a.keys.ShowKeys, Description: "to show keybinds", Action: a.keybindsAction},
		{Code: next(), Bind: a.keys.Quit, Description: "to quit", Action: a.quitAction},
	}
}

// selectOne renders the list and resolves a single selection. An empty
// list renders a placeholder entry and resolves to Cancel.
func (a *App) selectOne(ctx context.Context, items *types.List, mesg string) (types.Item, int, error) {
	res, err := a.doSelect(ctx, items, mesg, false)
	if err != nil {
		return nil, menu.Cancel, err
	}
	if len(res.Indices) == 0 {
		return nil, res.Code, nil
	}
	it, err := a.itemAt(items, res.Indices[0])
	if err != nil {
		return nil, menu.Cancel, err
	}
	return it, res.Code, nil
}

// selectMulti renders the list allowing multiple selections.
func (a *App) selectMulti(ctx context.Context, items *types.List, mesg string) ([]types.Item, int, error) {
	res, err := a.doSelect(ctx, items, mesg, true)
	if err != nil {
		return nil, menu.Cancel, err
	}
	chosen := make([]types.Item, 0, len(res.Indices))
	for _, idx := range res.Indices {
		it, err := a.itemAt(items, idx)
		if err != nil {
			return nil, menu.Cancel, err
		}
		chosen = append(chosen, it)
	}
	return chosen, res.Code, nil
}

func (a *App) doSelect(ctx context.Context, items *types.List, mesg string, multi bool) (menu.SelectResult, error) {
	if items == nil || items.Len() == 0 {
		// Terminal empty screen: show the placeholder, then cancel.
		_, _ = a.menu.Select(ctx, menu.SelectRequest{Lines: []string{"err: no items"}, Mesg: mesg, Prompt: a.prompt})
		return menu.SelectResult{Code: menu.Cancel}, nil
	}
	res, err := a.menu.Select(ctx, menu.SelectRequest{
		Lines:       items.Lines(a.opts),
		Mesg:        mesg,
		Prompt:      a.prompt,
		MultiSelect: multi,
		Keybinds:    a.registry.Current(),
	})
	if err != nil {
		return menu.SelectResult{}, errors.Wrap(err, errors.MenuFailed, "menu selection")
	}
	return res, nil
}

func (a *App) itemAt(items *types.List, idx int) (types.Item, error) {
	keys := items.Keys()
	if idx < 0 || idx >= len(keys) {
		return nil, errors.Newf(errors.MenuFailed, "selection index %d out of range", idx)
	}
	it, _ := items.Get(keys[idx])
	return it, nil
}

// dispatch resolves a non-confirm, non-cancel result code into its
// keybind action. A code the registry does not recognize is an engine
// invariant violation.
func (a *App) dispatch(ctx context.Context, code int, item types.Item, items *types.List) (int, error) {
	kb, err := a.registry.GetByCode(code)
	if err != nil {
		return menu.Cancel, errors.Wrapf(err, errors.UnknownKeycode, "menu returned code %d", code)
	}
	log.Debugf("dispatching keybind %q (code %d)", kb.Bind, kb.Code)
	return kb.Action(ctx, menu.Event{Item: item, Items: items, Keybind: kb})
}

// play hands a playable item to the player and blocks until playback
// ends.
func (a *App) play(ctx context.Context, item types.Item) (int, error) {
	if !item.Playable() {
		return menu.Cancel, errors.Newf(errors.NotPlayable, "item %q is not playable", item.Name())
	}
	if err := a.player.Play(ctx, item.Name(), item.URL()); err != nil {
		return menu.Cancel, err
	}
	return 0, nil
}

// takeInput blocks for a free-text line with keybind hints hidden.
// The result is trimmed; empty means the user cancelled.
func (a *App) takeInput(ctx context.Context, prompt, mesg string) (string, error) {
	a.registry.ToggleHidden(false)
	defer a.registry.ToggleHidden(true)
	input, err := a.menu.Input(ctx, prompt, mesg)
	if err != nil {
		return "", errors.Wrap(err, errors.MenuFailed, "free-text input")
	}
	return strings.TrimSpace(input), nil
}

// toggleContentKeybinds narrows the active set to the item-content
// keybinds (information, videos, clips).
func (a *App) toggleContentKeybinds() error {
	kbs, err := a.registry.GetByBindList(a.keys.Information, a.keys.Videos, a.keys.Clips)
	if err != nil {
		return err
	}
	a.registry.UnregisterAll()
	for _, k := range kbs {
		k.Toggle()
	}
	return a.registry.RegisterAll(kbs, true)
}

// channelsAndStreams fetches the followed channels and builds the
// status message from the live count.
func (a *App) channelsAndStreams(ctx context.Context) (*types.List, string, error) {
	data, err := a.fetch.ChannelsAndStreams(ctx, a.opts)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.FetchFailed, "fetching channels and streams")
	}
	if a.fetch.Online() == 0 {
		return data, fmt.Sprintf("> No streams online found from %d channels", data.Len()), nil
	}
	return data, fmt.Sprintf("> Showing (%d) streams from %d channels", a.fetch.Online(), data.Len()), nil
}
