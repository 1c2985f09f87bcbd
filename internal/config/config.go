package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// MaxStartupWindows caps how many list windows the shell opens, at
// startup and at runtime. Three panes is what a normal terminal width
// can still render side by side.
const MaxStartupWindows = 3

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	SeedItems  []string   `toml:"seed_items"` // list contents at startup
	Windows    int        `toml:"windows"`    // list windows to open at startup
	LogFile    string     `toml:"log_file"`   // empty means the default location
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHints      bool `toml:"show_hints"` // near-duplicate hints in the entry field
	AutosaveOnExit bool `toml:"autosave_on_exit"`
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
	filePath string
}

// NewConfigService creates a config service rooted at the user config
// directory, falling back to ~/.config and finally the working
// directory when the platform dir cannot be resolved.
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "basket", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
// path. Used when the --config flag is set, and by tests.
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Load loads the configuration from file. A missing file is not an
// error; the defaults are returned instead.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
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

	cfg.normalize()
	return &cfg, nil
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

// normalize clamps loaded values into ranges the shell can honor.
func (c *Config) normalize() {
	if c.SeedItems == nil {
		c.SeedItems = []string{}
	}
	if c.Windows < 1 {
		c.Windows = 1
	}
	if c.Windows > MaxStartupWindows {
		c.Windows = MaxStartupWindows
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		SeedItems: []string{},
		Windows:   1,
		UISettings: UISettings{
			ShowHints:      true,
			AutosaveOnExit: true,
		},
	}
}
