package app

import (
	"context"
	"fmt"

	"twitchy/internal/errors"
	"twitchy/internal/log"
	"twitchy/internal/menu"
	"twitchy/pkg/types"
)

// SearchChannels browses channels matching a free-text query. With an
// empty query the user is prompted; whitespace-only input cancels the
// screen without fetching.
func (a *App) SearchChannels(ctx context.Context, query string) (int, error) {
	if query == "" {
		var err error
		query, err = a.takeInput(ctx, "TwitchChannelSearch>", "Search <channels> by query")
		if err != nil {
			return menu.Cancel, err
		}
	}
	if query == "" {
		log.Debugf("channel search cancelled by user")
		return menu.Cancel, nil
	}

	channels, err := a.fetch.ChannelsByQuery(ctx, query, false, a.opts)
	if err != nil {
		return menu.Cancel, errors.Wrapf(err, errors.FetchFailed, "searching channels by %q", query)
	}
	list := types.NewList()
	for _, c := range channels {
		list.Add(c)
	}
	if err := a.toggleContentKeybinds(); err != nil {
		return menu.Cancel, err
	}
	mesg := fmt.Sprintf("> Showing (%d) <channels> by query: %q", list.Len(), query)
	return a.browseChannels(ctx, list, mesg)
}

// SearchGames picks a game matching a free-text query, then browses
// its live streams. Whitespace-only input cancels without fetching.
func (a *App) SearchGames(ctx context.Context, query string) (int, error) {
	if query == "" {
		var err error
		query, err = a.takeInput(ctx, "TwitchGameSearch>", "Search <games> or <categories>")
		if err != nil {
			return menu.Cancel, err
		}
	}
	if query == "" {
		log.Debugf("game search cancelled by user")
		return menu.Cancel, nil
	}

	games, err := a.fetch.GamesByQuery(ctx, query, a.opts)
	if err != nil {
		return menu.Cancel, errors.Wrapf(err, errors.FetchFailed, "searching games by %q", query)
	}
	gameList := types.NewList()
	for _, g := range games {
		gameList.Add(g)
	}
	selected, _, err := a.selectOne(ctx, gameList, fmt.Sprintf("> Showing (%d) <games> or <categories>", gameList.Len()))
	if err != nil {
		return menu.Cancel, err
	}
	if selected == nil {
		return menu.Cancel, nil
	}

	if err := a.toggleContentKeybinds(); err != nil {
		return menu.Cancel, err
	}
	streams, err := a.fetch.StreamsByGameID(ctx, selected.Key(), a.opts)
	if err != nil {
		return menu.Cancel, errors.Wrapf(err, errors.FetchFailed, "fetching streams for %q", selected.Name())
	}
	streamList := types.NewList()
	for _, s := range streams {
		streamList.Add(s)
	}
	if streamList.Len() == 0 {
		_, _, _ = a.selectOne(ctx, streamList, "> No <streams> found")
		return menu.Cancel, nil
	}
	mesg := fmt.Sprintf("> Showing (%d) <streams> from <%s> game", streamList.Len(), selected.Name())
	return a.showAndPlay(ctx, streamList, mesg)
}
