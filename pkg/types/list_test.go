package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitchy/pkg/types"
)

func TestListPreservesConstructionOrder(t *testing.T) {
	list := types.NewList(
		chan_("3", "third", "", 0, false),
		chan_("1", "first", "", 0, false),
		chan_("2", "second", "", 0, false),
	)

	require.Equal(t, 3, list.Len())
	assert.Equal(t, []string{"3", "1", "2"}, list.Keys())

	names := make([]string, 0, list.Len())
	for _, it := range list.Items() {
		names = append(names, it.Name())
	}
	assert.Equal(t, []string{"third", "first", "second"}, names)
}

func TestListReAddKeepsPosition(t *testing.T) {
	list := types.NewList(
		chan_("1", "one", "", 0, false),
		chan_("2", "two", "", 0, false),
	)
	list.Add(chan_("1", "one-replaced", "", 0, false))

	assert.Equal(t, []string{"1", "2"}, list.Keys())
	it, ok := list.Get("1")
	require.True(t, ok)
	assert.Equal(t, "one-replaced", it.Name())
}

func TestChannelPlayable(t *testing.T) {
	t.Run("live channel with url is playable", func(t *testing.T) {
		c := chan_("1", "alpha", "Rust", 10, true)
		assert.True(t, c.Playable())
		assert.Equal(t, "https://www.twitch.tv/alpha", c.URL())
	})

	t.Run("offline channel is not playable", func(t *testing.T) {
		c := chan_("1", "alpha", "Rust", 0, false)
		assert.False(t, c.Playable())
	})

	t.Run("live channel without url is not playable", func(t *testing.T) {
		c := &types.Channel{ID: "1", DisplayName: "alpha", Live: true}
		assert.Empty(t, c.URL())
		assert.False(t, c.Playable())
	})
}
