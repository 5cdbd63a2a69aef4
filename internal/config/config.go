package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"storyviewer/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int         `toml:"version"`
	DeckPath   string      `toml:"deck" env:"STORYVIEWER_DECK"`
	Watch      bool        `toml:"watch" env:"STORYVIEWER_WATCH"`
	Log        LogSettings `toml:"log"`
	UISettings UISettings  `toml:"ui"`
}

// LogSettings controls where and how much the app logs
type LogSettings struct {
	Level string `toml:"level" env:"STORYVIEWER_LOG_LEVEL"`
	File  string `toml:"file" env:"STORYVIEWER_LOG_FILE"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowControls bool `toml:"show_controls"`
	ShowProgress bool `toml:"show_progress"`
	ShowHelp     bool `toml:"show_help"`
	// DragDeadZone is the distance in cells a press must travel before it
	// is treated as a pan instead of a click.
	DragDeadZone int `toml:"drag_dead_zone" env:"STORYVIEWER_DEAD_ZONE"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user's config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "storyviewer", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

// Load loads the configuration from file. A missing file yields the
// default configuration. Environment overrides are applied in both cases.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := ApplyEnv(cfg); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{DeckPath: cfg.DeckPath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Values missing
// from the file keep their defaults; environment overrides win over both.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides cfg with any STORYVIEWER_* variables that are set
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if cfg.UISettings.DragDeadZone < 0 {
		cfg.UISettings.DragDeadZone = 0
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Watch:   true,
		Log: LogSettings{
			Level: "info",
			File:  "storyviewer.log",
		},
		UISettings: UISettings{
			ShowControls: true,
			ShowProgress: true,
			ShowHelp:     true,
			DragDeadZone: 1,
		},
	}
}
