package app

import (
	"context"
	"fmt"
	"sort"

	"twitchy/internal/errors"
	"twitchy/internal/format"
	"twitchy/internal/log"
	"twitchy/internal/menu"
	"twitchy/pkg/types"
)

// Run starts the session on the followed-streams screen.
func (a *App) Run(ctx context.Context) (int, error) {
	return a.ShowFollowed(ctx)
}

// ShowFollowed browses the followed channels and their live streams.
// Confirming a live channel plays it; confirming an offline one opens
// its video list.
func (a *App) ShowFollowed(ctx context.Context) (int, error) {
	items, mesg, err := a.channelsAndStreams(ctx)
	if err != nil {
		return menu.Cancel, err
	}
	current := a.registry.Current()
	a.registry.UnregisterAll()
	if err := a.registry.RegisterAll(current, false); err != nil {
		return menu.Cancel, err
	}
	return a.browseChannels(ctx, items, mesg)
}

// browseChannels resolves one selection over a channel list: cancel
// propagates, confirm on an offline channel recurses into its videos,
// confirm on a live one plays, and keybinds dispatch.
func (a *App) browseChannels(ctx context.Context, items *types.List, mesg string) (int, error) {
	item, code, err := a.selectOne(ctx, items, mesg)
	if err != nil {
		return menu.Cancel, err
	}
	if item == nil || code == menu.Cancel {
		log.Debugf("channel browse cancelled by user")
		return menu.Cancel, nil
	}
	if code == menu.Confirm {
		// Confirm on an unplayable item never plays; it opens the
		// channel's own video list.
		if !item.Playable() {
			return a.showVideos(ctx, item)
		}
		return a.play(ctx, item)
	}
	return a.dispatch(ctx, code, item, items)
}

// showAndPlay resolves one selection over a playable-content list.
// Unlike browseChannels there is no sub-screen to fall back to, so
// confirming an unplayable item is an explicit failure.
func (a *App) showAndPlay(ctx context.Context, items *types.List, mesg string) (int, error) {
	item, code, err := a.selectOne(ctx, items, mesg)
	if err != nil {
		return menu.Cancel, err
	}
	if item == nil || code == menu.Cancel {
		return menu.Cancel, nil
	}
	if code != menu.Confirm {
		return a.dispatch(ctx, code, item, items)
	}
	if !item.Playable() {
		return menu.Cancel, errors.Newf(errors.NotPlayable, "item %q is not playable", item.Name())
	}
	return a.play(ctx, item)
}

// showVideos drills into a channel's archived videos.
func (a *App) showVideos(ctx context.Context, item types.Item) (int, error) {
	a.registry.UnregisterAll()
	videos, err := a.fetch.Videos(ctx, item.Key(), a.opts)
	if err != nil {
		return menu.Cancel, errors.Wrapf(err, errors.FetchFailed, "fetching videos for %q", item.Name())
	}
	list := types.NewList()
	for _, v := range videos {
		list.Add(v)
	}
	mesg := fmt.Sprintf("> Showing (%d) videos from <%s> channel", list.Len(), item.Name())
	if list.Len() == 0 {
		mesg = fmt.Sprintf("> No videos found from <%s> channel", item.Name())
	}
	return a.showAndPlay(ctx, list, mesg)
}

// showClips drills into a channel's clips, newest first.
func (a *App) showClips(ctx context.Context, item types.Item) (int, error) {
	a.registry.UnregisterAll()
	log.Debugf("fetching clips for %q", item.Name())
	clips, err := a.fetch.Clips(ctx, item.Key(), a.opts)
	if err != nil {
		return menu.Cancel, errors.Wrapf(err, errors.FetchFailed, "fetching clips for %q", item.Name())
	}
	sort.SliceStable(clips, func(i, j int) bool { return clips[i].CreatedAt.After(clips[j].CreatedAt) })
	list := types.NewList()
	for _, c := range clips {
		list.Add(c)
	}
	mesg := fmt.Sprintf("> Showing (%d) clips from <%s> channel", list.Len(), item.Name())
	if list.Len() == 0 {
		mesg = fmt.Sprintf("> No clips found from <%s> channel", item.Name())
	}
	return a.showAndPlay(ctx, list, mesg)
}

// showGrouped groups the current channel list's live members by game
// and drills into the picked category.
func (a *App) showGrouped(ctx context.Context, items *types.List) (int, error) {
	if items == nil || items.Len() == 0 {
		return menu.Cancel, nil
	}
	categories := types.GroupByCategory(items)
	catList := types.NewList()
	for _, c := range categories {
		catList.Add(c)
	}
	mesg := fmt.Sprintf("> Showing (%d) <games>", catList.Len())
	selected, _, err := a.selectOne(ctx, catList, mesg)
	if err != nil {
		return menu.Cancel, err
	}
	if selected == nil {
		return menu.Cancel, nil
	}
	category := selected.(*types.Category)
	mesg = fmt.Sprintf("> Showing (%d) <channels> from <%s> category", category.Channels.Len(), category.Name())
	return a.browseChannels(ctx, category.Channels, mesg)
}

// TopStreams browses the most-viewed live streams, with the content
// keybinds plus the group-by-category keybind active.
func (a *App) TopStreams(ctx context.Context) (int, error) {
	gamesKb, err := a.registry.GetByBind(a.keys.GroupByCategory)
	if err != nil {
		return menu.Cancel, err
	}
	if err := a.toggleContentKeybinds(); err != nil {
		return menu.Cancel, err
	}
	if err := a.registry.Register(gamesKb); err != nil {
		return menu.Cancel, err
	}
	streams, err := a.fetch.TopStreams(ctx, a.opts)
	if err != nil {
		return menu.Cancel, errors.Wrap(err, errors.FetchFailed, "fetching top streams")
	}
	list := types.NewList()
	for _, s := range streams {
		list.Add(s)
	}
	mesg := fmt.Sprintf("> Showing (%d) top streams", list.Len())
	return a.showAndPlay(ctx, list, mesg)
}

// TopGames loops over the top categories and their streams: picking a
// category re-renders with a narrower keybind set; cancelling inside a
// category returns to the category list.
func (a *App) TopGames(ctx context.Context) (int, error) {
	log.Debugf("processing top games")
	categories, err := a.fetch.TopGamesWithStreams(ctx, a.opts)
	if err != nil {
		return menu.Cancel, errors.Wrap(err, errors.FetchFailed, "fetching top games")
	}
	nviewers, nchannels := 0, 0
	for _, c := range categories {
		nviewers += c.TotalViewers()
		nchannels += c.ChannelsLive()
	}
	contentKbs, err := a.registry.GetByBindList(a.keys.Clips, a.keys.Videos)
	if err != nil {
		return menu.Cancel, err
	}

	catList := types.NewList()
	for _, c := range categories {
		catList.Add(c)
	}

	for {
		mesg := fmt.Sprintf("> Showing %d top categories (%d streams and %s viewers)",
			catList.Len(), nchannels, format.Number(nviewers))
		a.registry.UnregisterAll()
		cat, _, err := a.selectOne(ctx, catList, mesg)
		if err != nil {
			return menu.Cancel, err
		}
		if cat == nil {
			return menu.Cancel, nil
		}

		category := cat.(*types.Category)
		for _, kb := range contentKbs {
			kb.Toggle()
		}
		if err := a.registry.RegisterAll(contentKbs, false); err != nil {
			return menu.Cancel, err
		}

		mesg = fmt.Sprintf("> Showing (%d) streams from <%s> category", category.Channels.Len(), category.Name())
		item, code, err := a.selectOne(ctx, category.Channels, mesg)
		if err != nil {
			return menu.Cancel, err
		}
		if item == nil {
			// Back to the category list.
			continue
		}
		if code == menu.Confirm {
			return a.play(ctx, item)
		}
		if code != menu.Cancel {
			return a.dispatch(ctx, code, item, category.Channels)
		}
	}
}

// showKeybinds lists every active keybind for the selected item and
// dispatches the chosen one.
func (a *App) showKeybinds(ctx context.Context, ev menu.Event) (int, error) {
	if ev.Keybind != nil {
		ev.Keybind.Toggle()
	}
	keybinds := a.registry.Current()
	list := types.NewList()
	for _, kb := range keybinds {
		list.Add(&keybindEntry{kb})
	}
	mesg := fmt.Sprintf("> Showing (%d) <keybinds>", list.Len())
	if ev.Item != nil {
		mesg += fmt.Sprintf("\n> item selected: <%s>", ev.Item.Name())
	}

	selected, code, err := a.selectOne(ctx, list, mesg)
	if err != nil {
		return menu.Cancel, err
	}
	if code == menu.Cancel || selected == nil {
		return menu.Cancel, nil
	}
	kb := selected.(*keybindEntry).kb
	if code != menu.Confirm {
		// Invoked directly instead of picked from the list.
		if kb, err = a.registry.GetByCode(code); err != nil {
			return menu.Cancel, errors.Wrapf(err, errors.UnknownKeycode, "menu returned code %d", code)
		}
	}
	return kb.Action(ctx, menu.Event{Item: ev.Item, Items: ev.Items, Keybind: kb})
}

// keybindEntry adapts a keybind to the Item interface so the keybind
// screen can reuse the selection plumbing.
type keybindEntry struct {
	kb *menu.Keybind
}

func (k *keybindEntry) Key() string    { return k.kb.Bind }
func (k *keybindEntry) Name() string   { return k.kb.Bind }
func (k *keybindEntry) URL() string    { return "" }
func (k *keybindEntry) Playable() bool { return false }
func (k *keybindEntry) Line(types.DisplayOptions) string {
	return fmt.Sprintf("%-10s %s", k.kb.Bind, k.kb.Description)
}
