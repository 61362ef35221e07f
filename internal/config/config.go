package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"engagedash/internal/state"
)

// Config holds all engage configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// StatePath is the JSON state document.
	StatePath string `yaml:"state_path"`

	// SnapshotPath is the default export target; .svg or .png.
	SnapshotPath string `yaml:"snapshot_path"`

	// BackupCorruptState copies an unreadable state file aside before it is
	// replaced by sample data.
	BackupCorruptState bool `yaml:"backup_corrupt_state"`

	// Terminal presentation
	UI UIConfig `yaml:"ui"`

	// Watch mode
	Watch WatchConfig `yaml:"watch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// WatchConfig configures `engage watch`.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:               "engage",
		Version:            "0.3.0",
		StatePath:          filepath.FromSlash(state.DefaultPath),
		SnapshotPath:       filepath.Join("docs", "dashboard_snapshot.svg"),
		BackupCorruptState: true,
		UI:                 *DefaultUIConfig(),
		Watch: WatchConfig{
			Debounce: "250ms",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultConfigPath returns the default path to .engage/config.yaml.
func DefaultConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".engage", "config.yaml")
	}
	return filepath.Join(cwd, ".engage", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("ENGAGE_STATE_PATH"); path != "" {
		c.StatePath = path
	}
	if path := os.Getenv("ENGAGE_SNAPSHOT_PATH"); path != "" {
		c.SnapshotPath = path
	}
	if theme := os.Getenv("ENGAGE_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if width := os.Getenv("ENGAGE_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.UI.Width = w
		}
	}
	if level := os.Getenv("ENGAGE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// GetWatchDebounce returns the watch debounce as a duration.
func (c *Config) GetWatchDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 250 * time.Millisecond
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.StatePath == "" {
		return fmt.Errorf("state_path must not be empty")
	}
	switch ext := filepath.Ext(c.SnapshotPath); ext {
	case ".svg", ".png":
	default:
		return fmt.Errorf("invalid snapshot_path %q: extension must be .svg or .png", c.SnapshotPath)
	}
	if err := c.UI.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
