package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(NotPlayable, "item is not playable")
	assert.NotNil(t, err)
	assert.Equal(t, "item is not playable", err.Error())

	err = Newf(FetchFailed, "fetching %s", "clips")
	assert.NotNil(t, err)
	assert.Equal(t, "fetching clips", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, FetchFailed, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	base := errors.New("exit status 1")

	wrapped := Wrap(base, MenuFailed, "menu selection")
	assert.Equal(t, "menu selection: exit status 1", wrapped.Error())
	assert.True(t, Is(wrapped, base), "wrapping preserves the chain")
	assert.Equal(t, base, Unwrap(wrapped))

	wrapped = Wrapf(base, FetchFailed, "fetching videos for %q", "alpha")
	assert.Equal(t, `fetching videos for "alpha": exit status 1`, wrapped.Error())
	assert.Equal(t, FetchFailed, KindOf(wrapped))

	assert.Nil(t, Wrap(nil, MenuFailed, "ignored"), "wrapping nil stays nil")
	assert.Nil(t, Wrapf(nil, MenuFailed, "ignored %d", 1))
}

func TestKindChecks(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		kind  ErrorKind
		check func(error) bool
	}{
		{"not playable", New(NotPlayable, "x"), NotPlayable, IsNotPlayable},
		{"channel offline", New(ChannelOffline, "x"), ChannelOffline, IsChannelOffline},
		{"unknown keycode", New(UnknownKeycode, "x"), UnknownKeycode, IsUnknownKeycode},
		{"keybind not found", New(KeybindNotFound, "x"), KeybindNotFound, IsKeybindNotFound},
		{"fetch failed", New(FetchFailed, "x"), FetchFailed, IsFetchFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.check(tc.err))
			assert.True(t, IsKind(tc.err, tc.kind))
			assert.Equal(t, tc.kind, KindOf(tc.err))
			assert.False(t, IsKind(tc.err, Unknown))
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := New(KeybindNotFound, "no keybind bound to code 99")
	outer := Wrapf(inner, UnknownKeycode, "menu returned code %d", 99)

	// The outermost kind wins; the inner one stays reachable via As.
	assert.Equal(t, UnknownKeycode, KindOf(outer))
	assert.True(t, IsUnknownKeycode(outer))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("plain")))
	assert.False(t, IsNotPlayable(fmt.Errorf("plain")))
}
