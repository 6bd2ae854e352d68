package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple lowercase",
			input:    "skirmish",
			expected: "skirmish",
		},
		{
			name:     "uppercase converted",
			input:    "Skirmish",
			expected: "skirmish",
		},
		{
			name:     "spaces to underscores",
			input:    "long winter",
			expected: "long_winter",
		},
		{
			name:     "hyphens to underscores",
			input:    "long-winter",
			expected: "long_winter",
		},
		{
			name:     "special characters removed",
			input:    "fire@ice!",
			expected: "fireice",
		},
		{
			name:     "consecutive underscores collapsed",
			input:    "fire--ice",
			expected: "fire_ice",
		},
		{
			name:     "leading trailing underscores trimmed",
			input:    "-fire-ice-",
			expected: "fire_ice",
		},
		{
			name:     "empty string returns default",
			input:    "",
			expected: "default",
		},
		{
			name:     "only special chars returns default",
			input:    "!!!",
			expected: "default",
		},
		{
			name:     "complex mixed input",
			input:    "The Frozen Wing (Run 2)",
			expected: "the_frozen_wing_run_2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeName(tt.input))
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, uint64(0), cfg.Simulation.Seed)
	assert.Equal(t, 6, cfg.Simulation.InitialDragons)
	assert.Equal(t, 10, cfg.Simulation.Interactions)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.True(t, cfg.Journal.Enabled)
	assert.Empty(t, cfg.Journal.Path)
}

func TestConfigDir(t *testing.T) {
	assert.Equal(t, "/home/user/project/.dragonclan", ConfigDir("/home/user/project"))
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, "/home/user/project/.dragonclan/config.yaml", ConfigFilePath("/home/user/project"))
}

func TestJournalPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "/srv/.dragonclan/journal.db", cfg.JournalPath("/srv"))

	cfg.Journal.Path = "runs/events.db"
	assert.Equal(t, "/srv/runs/events.db", cfg.JournalPath("/srv"))

	cfg.Journal.Path = "/var/lib/clan.db"
	assert.Equal(t, "/var/lib/clan.db", cfg.JournalPath("/srv"))
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clan init")
}

func TestWriteDefaultAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, WriteDefault(tmpDir))
	assert.True(t, Exists(tmpDir))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = WriteDefault(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, DefaultConfigDir), 0755))
	content := "simulation:\n  seed: 42\nlogging:\n  format: json\n"
	require.NoError(t, os.WriteFile(ConfigFilePath(tmpDir), []byte(content), 0600))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.Equal(t, 6, cfg.Simulation.InitialDragons)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, DefaultConfigDir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(tmpDir), []byte("simulation: [oops"), 0600))

	_, err := Load(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadOrDefault_EnvOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvJournalPath, "/tmp/j.db")

	cfg, err := LoadOrDefault(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, uint64(1234), cfg.Simulation.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/j.db", cfg.Journal.Path)
}

func TestLoadOrDefault_BadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "not-a-number")

	_, err := LoadOrDefault(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSeed)
}

func TestWrite(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Default()
	cfg.Simulation.Interactions = 99
	cfg.Journal.Enabled = false

	require.NoError(t, Write(tmpDir, cfg))

	loaded, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 99, loaded.Simulation.Interactions)
	assert.False(t, loaded.Journal.Enabled)
}
