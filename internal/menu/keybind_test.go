package menu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitchy/internal/errors"
)

func noopAction(ctx context.Context, ev Event) (int, error) { return 0, nil }

func testKeybinds() []*Keybind {
	return []*Keybind{
		{Code: KeycodeBase, Bind: "alt-v", Description: "to show videos", Action: noopAction},
		{Code: KeycodeBase + 1, Bind: "alt-c", Description: "to show clips", Action: noopAction},
		{Code: KeycodeBase + 2, Bind: "alt-i", Description: "to show information", Action: noopAction, Hidden: true},
	}
}

func TestRegistryRegisterAll(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterAll(testKeybinds(), false))
	assert.Len(t, r.Current(), 3)

	t.Run("duplicate code is a programming error", func(t *testing.T) {
		err := r.RegisterAll(testKeybinds()[:1], false)
		require.Error(t, err)
		assert.True(t, errors.IsKind(err, errors.KeybindExists))
	})

	t.Run("existOK tolerates duplicates", func(t *testing.T) {
		require.NoError(t, r.RegisterAll(testKeybinds()[:1], true))
		assert.Len(t, r.Current(), 3)
	})
}

func TestRegistryUnregisterAllIdempotent(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterAll(testKeybinds(), false))
	r.UnregisterAll()
	r.UnregisterAll()
	assert.Empty(t, r.Current())
}

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterAll(testKeybinds(), false))

	t.Run("by code", func(t *testing.T) {
		k, err := r.GetByCode(KeycodeBase + 1)
		require.NoError(t, err)
		assert.Equal(t, "alt-c", k.Bind)

		_, err = r.GetByCode(99)
		assert.True(t, errors.IsKeybindNotFound(err))
	})

	t.Run("by bind", func(t *testing.T) {
		k, err := r.GetByBind("alt-v")
		require.NoError(t, err)
		assert.Equal(t, KeycodeBase, k.Code)

		_, err = r.GetByBind("alt-x")
		assert.True(t, errors.IsKeybindNotFound(err))
	})

	t.Run("by bind list", func(t *testing.T) {
		kbs, err := r.GetByBindList("alt-c", "alt-v")
		require.NoError(t, err)
		require.Len(t, kbs, 2)
		assert.Equal(t, "alt-c", kbs[0].Bind)
		assert.Equal(t, "alt-v", kbs[1].Bind)

		_, err = r.GetByBindList("alt-c", "alt-x")
		assert.True(t, errors.IsKeybindNotFound(err))
	})
}

func TestRegistryCurrentOrderedByCode(t *testing.T) {
	r := NewRegistry()
	kbs := testKeybinds()
	require.NoError(t, r.RegisterAll([]*Keybind{kbs[2], kbs[0], kbs[1]}, false))

	current := r.Current()
	require.Len(t, current, 3)
	for i := 1; i < len(current); i++ {
		assert.Less(t, current[i-1].Code, current[i].Code)
	}
}

func TestToggleHiddenRestoresPriorVisibility(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterAll(testKeybinds(), false))

	r.ToggleHidden(false)
	for _, k := range r.Current() {
		assert.True(t, k.Hidden, "all hints hidden during input")
	}

	r.ToggleHidden(true)
	visible := 0
	for _, k := range r.Current() {
		if !k.Hidden {
			visible++
		}
	}
	assert.Equal(t, 2, visible, "prior visibility restored, alt-i stays hidden")
}
