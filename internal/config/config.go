package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"floatbar/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Header  HeaderSettings `toml:"header"`
	Feed    FeedSettings   `toml:"feed"`
	UI      UISettings     `toml:"ui"`
}

// HeaderSettings configures the floating header and its transition
type HeaderSettings struct {
	Height       int    `toml:"height"`        // rows
	TransitionMS int    `toml:"transition_ms"` // suggested smoothing duration
	Curve        string `toml:"curve"`         // easing curve name
}

// FeedSettings configures the demo feed generator
type FeedSettings struct {
	Entries int   `toml:"entries"`
	Seed    int64 `toml:"seed"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MouseWheel    bool `toml:"mouse_wheel"`
	ShowStatusBar bool `toml:"show_status_bar"`
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

// NewConfigService creates a new config service
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

	// Create floatbar config directory
	floatbarDir := filepath.Join(configDir, "floatbar")
	os.MkdirAll(floatbarDir, 0755)

	return &configService{
		filePath: filepath.Join(floatbarDir, "floatbar.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Return default config if file doesn't exist
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()

		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
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

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Backfill anything the file leaves unset
	applyDefaults(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Header: HeaderSettings{
			Height:       3,
			TransitionMS: 120,
			Curve:        "ease-out",
		},
		Feed: FeedSettings{
			Entries: 120,
			Seed:    7,
		},
		UI: UISettings{
			MouseWheel:    true,
			ShowStatusBar: true,
		},
	}
}

// applyDefaults fills zero values with the defaults so partial config
// files stay usable
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Header.Height <= 0 {
		cfg.Header.Height = def.Header.Height
	}
	if cfg.Header.TransitionMS <= 0 {
		cfg.Header.TransitionMS = def.Header.TransitionMS
	}
	if cfg.Header.Curve == "" {
		cfg.Header.Curve = def.Header.Curve
	}
	if cfg.Feed.Entries <= 0 {
		cfg.Feed.Entries = def.Feed.Entries
	}
	if cfg.Feed.Seed == 0 {
		cfg.Feed.Seed = def.Feed.Seed
	}
}
