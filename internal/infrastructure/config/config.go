// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for dragon-clan configuration.
	DefaultConfigDir = ".dragonclan"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultPresetsFile is the default presets file name.
	DefaultPresetsFile = "presets.yaml"
	// DefaultJournalFile is the default event journal file name.
	DefaultJournalFile = "journal.db"
)

// Environment variables that override file settings.
const (
	EnvSeed        = "DRAGONCLAN_SEED"
	EnvLogLevel    = "DRAGONCLAN_LOG_LEVEL"
	EnvJournalPath = "DRAGONCLAN_JOURNAL_PATH"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds static configuration (read-only after load).
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
	Journal    JournalConfig    `yaml:"journal"`
}

// SimulationConfig holds defaults for clan simulations.
type SimulationConfig struct {
	// Seed makes runs reproducible. Zero means a fresh seed each run.
	Seed           uint64 `yaml:"seed"`
	InitialDragons int    `yaml:"initial_dragons"`
	Interactions   int    `yaml:"interactions"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// JournalConfig holds settings for the SQLite event journal.
type JournalConfig struct {
	Enabled bool `yaml:"enabled"`
	// Path is the journal database file. Empty means .dragonclan/journal.db.
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			InitialDragons: 6,
			Interactions:   10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Journal: JournalConfig{
			Enabled: true,
		},
	}
}

// Load loads configuration from the .dragonclan directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'clan init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config file if present and falls back to defaults
// otherwise. Environment overrides apply either way.
func LoadOrDefault(basePath string) (*Config, error) {
	if Exists(basePath) {
		return Load(basePath)
	}
	cfg := Default()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if seed := os.Getenv(EnvSeed); seed != "" {
		v, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvSeed, err)
		}
		c.Simulation.Seed = v
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if path := os.Getenv(EnvJournalPath); path != "" {
		c.Journal.Path = path
	}
	return nil
}

// JournalPath resolves the journal database path relative to basePath.
func (c *Config) JournalPath(basePath string) string {
	if c.Journal.Path == "" {
		return filepath.Join(basePath, DefaultConfigDir, DefaultJournalFile)
	}
	if filepath.IsAbs(c.Journal.Path) {
		return c.Journal.Path
	}
	return filepath.Join(basePath, c.Journal.Path)
}

// ConfigDir returns the path to the .dragonclan config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// PresetsFilePath returns the path to the presets file.
func PresetsFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultPresetsFile)
}

// Exists checks if a dragon-clan config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}

// SanitizeName converts a preset name to a stable lowercase key.
func SanitizeName(name string) string {
	// Convert to lowercase
	name = strings.ToLower(name)

	// Replace spaces and hyphens with underscores
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	// Remove any characters that aren't alphanumeric or underscore
	name = reNonAlphanumeric.ReplaceAllString(name, "")

	// Remove consecutive underscores
	name = reMultipleUnderscores.ReplaceAllString(name, "_")

	// Trim leading/trailing underscores
	name = strings.Trim(name, "_")

	if name == "" {
		return "default"
	}

	return name
}
