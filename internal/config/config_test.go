package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitchy/internal/config"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validYAML = `
menu:
  backend: fzf
  prompt: "Twitchy>"
  lines: 30
player:
  command: vlc
  args: ["--fullscreen"]
display:
  ansi: false
snapshot: /tmp/snapshot.json
keys:
  videos: alt-1
  quit: alt-x
`

func TestDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "rofi", cfg.Menu.Backend)
	assert.Equal(t, "Twitch>", cfg.Menu.Prompt)
	assert.Equal(t, 15, cfg.Menu.Lines)
	assert.Equal(t, "mpv", cfg.Player.Command)
	assert.True(t, cfg.Display.Markup)
	assert.True(t, cfg.Display.ANSI)
	assert.Equal(t, "alt-v", cfg.Keys.Videos)
	assert.Equal(t, "alt-q", cfg.Keys.Quit)
}

func TestBindListIsCompleteAndUnique(t *testing.T) {
	binds := config.New().Keys.BindList()
	require.Len(t, binds, 12)

	seen := make(map[string]bool, len(binds))
	for _, b := range binds {
		assert.NotEmpty(t, b)
		assert.False(t, seen[b], "duplicate bind %q", b)
		seen[b] = true
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("valid file overrides defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)

		assert.Equal(t, "fzf", cfg.Menu.Backend)
		assert.Equal(t, "Twitchy>", cfg.Menu.Prompt)
		assert.Equal(t, 30, cfg.Menu.Lines)
		assert.Equal(t, "vlc", cfg.Player.Command)
		assert.Equal(t, []string{"--fullscreen"}, cfg.Player.Args)
		assert.False(t, cfg.Display.ANSI)
		assert.Equal(t, "/tmp/snapshot.json", cfg.Snapshot)
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)

		assert.Equal(t, "alt-1", cfg.Keys.Videos, "overridden key")
		assert.Equal(t, "alt-x", cfg.Keys.Quit, "overridden key")
		assert.Equal(t, "alt-c", cfg.Keys.Clips, "untouched key keeps its default")
		assert.True(t, cfg.Display.Markup, "untouched display flag keeps its default")
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "rofi", cfg.Menu.Backend)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, "menu: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("unsupported backend fails", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, "menu:\n  backend: dmenu\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported menu backend")
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := config.New()
	cfg.Menu.Backend = "fzf"
	cfg.Snapshot = "/data/streams.json"
	require.NoError(t, cfg.Save(path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fzf", loaded.Menu.Backend)
	assert.Equal(t, "/data/streams.json", loaded.Snapshot)
	assert.Equal(t, cfg.Keys, loaded.Keys)
}
