package app

import (
	"context"
	"fmt"

	"twitchy/internal/errors"
	"twitchy/internal/format"
	"twitchy/internal/log"
	"twitchy/internal/menu"
	"twitchy/pkg/types"
)

// Keybind adapters. Each binds a screen or terminal action to the
// Action signature the registry dispatches.

func (a *App) videosAction(ctx context.Context, ev menu.Event) (int, error) {
	return a.showVideos(ctx, ev.Item)
}

func (a *App) clipsAction(ctx context.Context, ev menu.Event) (int, error) {
	return a.showClips(ctx, ev.Item)
}

func (a *App) chatAction(ctx context.Context, ev menu.Event) (int, error) {
	return a.openChat(ctx, ev)
}

func (a *App) infoAction(ctx context.Context, ev menu.Event) (int, error) {
	return a.showItemInfo(ctx, ev)
}

func (a *App) groupAction(ctx context.Context, ev menu.Event) (int, error) {
	return a.showGrouped(ctx, ev.Items)
}

func (a *App) searchGameAction(ctx context.Context, ev menu.Event) (int, error) {
	return a.SearchGames(ctx, "")
}

func (a *App) searchQueryAction(ctx context.Context, ev menu.Event) (int, error) {
	return a.SearchChannels(ctx, "")
}

func (a *App) topStreamsAction(ctx context.Context, ev menu.Event) (int, error) {
	return a.TopStreams(ctx)
}

func (a *App) topGamesAction(ctx context.Context, ev menu.Event) (int, error) {
	return a.TopGames(ctx)
}

func (a *App) multiAction(ctx context.Context, ev menu.Event) (int, error) {
	return a.MultiSelect(ctx)
}

func (a *App) keybindsAction(ctx context.Context, ev menu.Event) (int, error) {
	return a.showKeybinds(ctx, ev)
}

func (a *App) quitAction(ctx context.Context, ev menu.Event) (int, error) {
	if err := a.fetch.Close(); err != nil {
		log.Debugf("closing fetcher: %v", err)
	}
	log.Debugf("terminated by user")
	return 0, nil
}

// showItemInfo renders the selected item's attributes as label/value
// rows, the url pinned first. Confirming a row copies its value to the
// clipboard; the screen never recurses or plays and hands the
// underlying result code back unchanged.
func (a *App) showItemInfo(ctx context.Context, ev menu.Event) (int, error) {
	a.registry.UnregisterAll()
	item := ev.Item
	if item == nil {
		return menu.Cancel, nil
	}
	rows := []format.Row{{Label: "url", Value: item.URL()}}
	if det, ok := item.(types.Detailer); ok {
		rows = append(rows, det.Details()...)
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, format.RenderRow(r))
	}
	mesg := fmt.Sprintf("> item <%s> information\n> Hit enter to copy", item.Name())

	res, err := a.menu.Select(ctx, menu.SelectRequest{Lines: lines, Mesg: mesg, Prompt: a.prompt})
	if err != nil {
		return menu.Cancel, errors.Wrap(err, errors.MenuFailed, "menu selection")
	}
	if len(res.Indices) == 0 {
		return res.Code, nil
	}
	idx := res.Indices[0]
	if idx < 0 || idx >= len(lines) {
		return menu.Cancel, errors.Newf(errors.MenuFailed, "selection index %d out of range", idx)
	}
	if err := a.copyText(format.SplitRow(lines[idx])); err != nil {
		return menu.Cancel, err
	}
	return res.Code, nil
}

// openChat opens the selected channel's chat in the browser. The
// channel must be live.
func (a *App) openChat(ctx context.Context, ev menu.Event) (int, error) {
	ch, ok := ev.Item.(*types.Channel)
	if !ok {
		return menu.Cancel, errors.New(errors.ChannelOffline, "chat requires a channel")
	}
	if !ch.Live {
		return menu.Cancel, errors.Newf(errors.ChannelOffline, "channel %q must be online", ch.Name())
	}
	log.Debugf("opening chat for %q", ch.Name())
	if err := a.openURL(ch.ChatURL()); err != nil {
		return menu.Cancel, err
	}
	return 0, nil
}

// MultiSelect lets the user pick several streams at once; every
// playable pick is spawned in its own player process. The screen waits
// for the launches, not for playback.
func (a *App) MultiSelect(ctx context.Context) (int, error) {
	items, mesg, err := a.channelsAndStreams(ctx)
	if err != nil {
		return menu.Cancel, err
	}
	mesg += "\n> Use <shift-enter> for multi-select"
	if kb, err := a.registry.GetByBind(a.keys.ShowKeys); err == nil {
		kb.Hide()
	}

	chosen, _, err := a.selectMulti(ctx, items, mesg)
	if err != nil {
		return menu.Cancel, err
	}
	if len(chosen) == 0 {
		return menu.Cancel, nil
	}

	urls := make([]string, 0, len(chosen))
	for _, it := range chosen {
		if !it.Playable() {
			log.Debugf("skipping unplayable item %q", it.Name())
			continue
		}
		urls = append(urls, it.URL())
	}
	if len(urls) == 0 {
		return menu.Cancel, errors.New(errors.NotPlayable, "no playable items selected")
	}
	if err := a.player.SpawnAll(ctx, urls); err != nil {
		return menu.Cancel, err
	}
	return 0, nil
}
