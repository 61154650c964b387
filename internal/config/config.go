package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
)

// Config holds the application configuration
type Config struct {
	Storage      string     `yaml:"storage,omitempty"`       // "sqlite" (default) or "file"
	Database     string     `yaml:"database,omitempty"`      // SQLite path
	DataFile     string     `yaml:"data_file,omitempty"`     // JSON path when storage is "file"
	Selected     string     `yaml:"selected,omitempty"`      // id of the selected habit
	DefaultColor string     `yaml:"default_color,omitempty"` // colour for new habits
	LogLevel     string     `yaml:"log_level,omitempty"`
	MQTT         MQTTConfig `yaml:"mqtt,omitempty"`
}

// MQTTConfig holds MQTT broker settings for publishing habit stats
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"`                 // e.g., "localhost:1883"
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"` // default "habitgrid"
	ClientID    string `yaml:"client_id,omitempty"`    // default "habitgrid"
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// Validate checks values that have a fixed set of choices
func (c *Config) Validate() error {
	switch c.Storage {
	case "", StorageSQLite, StorageFile:
	default:
		return fmt.Errorf("unknown storage %q (use %s or %s)", c.Storage, StorageSQLite, StorageFile)
	}

	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return fmt.Errorf("MQTT broker address is required when enabled")
	}
	return nil
}

// GetStorage returns the storage backend, defaulting to SQLite
func (c *Config) GetStorage() string {
	if c.Storage == "" {
		return StorageSQLite
	}
	return c.Storage
}

// GetDatabase returns the SQLite path with a default of ./habits.db
func (c *Config) GetDatabase() string {
	if c.Database == "" {
		return "habits.db"
	}
	return c.Database
}

// GetDataFile returns the JSON data file path with a default of ./habits.json
func (c *Config) GetDataFile() string {
	if c.DataFile == "" {
		return "habits.json"
	}
	return c.DataFile
}

// GetDefaultColor returns the colour for new habits, GitHub green if unset
func (c *Config) GetDefaultColor() string {
	if c.DefaultColor == "" {
		return "#40c463"
	}
	return c.DefaultColor
}

// GetLogLevel returns the log level with a default of "warn"
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// GetTopicPrefix returns the MQTT topic prefix
func (m MQTTConfig) GetTopicPrefix() string {
	if m.TopicPrefix == "" {
		return "habitgrid"
	}
	return m.TopicPrefix
}

// GetClientID returns the MQTT client id
func (m MQTTConfig) GetClientID() string {
	if m.ClientID == "" {
		return "habitgrid"
	}
	return m.ClientID
}
