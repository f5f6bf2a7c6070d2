// Package config loads the application configuration and the keybind
// map from ~/.config/twitchy/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Keys maps engine actions to user-facing key labels. The labels are
// what the menu backend binds (rofi custom keybinds, fzf --expect keys).
type Keys struct {
	Videos          string `yaml:"videos"`            // Show selected channel's videos
	Clips           string `yaml:"clips"`             // Show selected channel's clips
	Chat            string `yaml:"chat"`              // Open selected channel's chat
	Information     string `yaml:"information"`       // Show selected item's attributes
	GroupByCategory string `yaml:"group_by_category"` // Group live streams by game
	SearchByGame    string `yaml:"search_by_game"`    // Free-text game search
	SearchByQuery   string `yaml:"search_by_query"`   // Free-text channel search
	TopStreams      string `yaml:"top_streams"`       // Browse top streams
	TopGames        string `yaml:"top_games"`         // Browse top games
	MultiSelection  string `yaml:"multi_selection"`   // Multi-select playback
	ShowKeys        string `yaml:"show_keys"`         // List registered keybinds
	Quit            string `yaml:"quit"`              // Quit the session
}

// Config represents the application configuration structure.
type Config struct {
	Menu struct {
		Backend string `yaml:"backend"` // Menu program: rofi or fzf
		Prompt  string `yaml:"prompt"`  // Default prompt
		Lines   int    `yaml:"lines"`   // Visible menu lines
	} `yaml:"menu"`
	Player struct {
		Command string   `yaml:"command"` // Media player executable
		Args    []string `yaml:"args"`    // Extra player arguments
	} `yaml:"player"`
	Display struct {
		Markup bool `yaml:"markup"` // Menu-side markup hint
		ANSI   bool `yaml:"ansi"`   // Terminal color hint
	} `yaml:"display"`
	Snapshot string `yaml:"snapshot"` // Path to an offline content snapshot
	Keys     Keys   `yaml:"keys"`
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Menu.Backend = "rofi"
	cfg.Menu.Prompt = "Twitch>"
	cfg.Menu.Lines = 15
	cfg.Player.Command = "mpv"
	cfg.Display.Markup = true
	cfg.Display.ANSI = true
	cfg.Keys = Keys{
		Videos:          "alt-v",
		Clips:           "alt-c",
		Chat:            "alt-o",
		Information:     "alt-i",
		GroupByCategory: "alt-g",
		SearchByGame:    "alt-s",
		SearchByQuery:   "alt-b",
		TopStreams:      "alt-t",
		TopGames:        "alt-u",
		MultiSelection:  "alt-m",
		ShowKeys:        "alt-k",
		Quit:            "alt-q",
	}
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/twitchy/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "twitchy", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal over the defaults; fields absent from the file keep
	// their default values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if cfg.Menu.Backend != "rofi" && cfg.Menu.Backend != "fzf" {
		return nil, fmt.Errorf("unsupported menu backend: %q", cfg.Menu.Backend)
	}

	return cfg, nil
}

// Save writes the configuration to a file path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// BindList returns the labels of all configured keybinds, in a stable
// order.
func (k Keys) BindList() []string {
	return []string{
		k.Videos, k.Clips, k.Chat, k.Information, k.GroupByCategory,
		k.SearchByGame, k.SearchByQuery, k.TopStreams, k.TopGames,
		k.MultiSelection, k.ShowKeys, k.Quit,
	}
}
