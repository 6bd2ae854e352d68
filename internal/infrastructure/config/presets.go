package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// PresetsConfig holds named simulation setups (read/write).
type PresetsConfig struct {
	Presets map[string]Preset `yaml:"presets,omitempty"`
}

// Preset is a reusable simulation setup. Zero fields fall back to the
// simulation defaults in Config.
type Preset struct {
	Description  string   `yaml:"description,omitempty"`
	Dragons      int      `yaml:"dragons,omitempty"`
	Interactions int      `yaml:"interactions,omitempty"`
	Seed         uint64   `yaml:"seed,omitempty"`
	Elements     []string `yaml:"elements,omitempty"`
}

// LoadPresets loads presets from the .dragonclan directory.
func LoadPresets(basePath string) (*PresetsConfig, error) {
	data, err := os.ReadFile(PresetsFilePath(basePath))
	if os.IsNotExist(err) {
		// Return empty config if file doesn't exist
		return &PresetsConfig{
			Presets: make(map[string]Preset),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}

	var cfg PresetsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing presets file: %w", err)
	}

	if cfg.Presets == nil {
		cfg.Presets = make(map[string]Preset)
	}

	return &cfg, nil
}

// Save writes the presets to the presets file.
func (p *PresetsConfig) Save(basePath string) error {
	if err := os.MkdirAll(ConfigDir(basePath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling presets: %w", err)
	}

	if err := os.WriteFile(PresetsFilePath(basePath), data, 0600); err != nil {
		return fmt.Errorf("writing presets file: %w", err)
	}

	return nil
}

// Add stores a preset under its sanitized name and returns that name.
func (p *PresetsConfig) Add(name string, preset Preset) string {
	if p.Presets == nil {
		p.Presets = make(map[string]Preset)
	}
	key := SanitizeName(name)
	p.Presets[key] = preset
	return key
}

// Remove removes a preset.
func (p *PresetsConfig) Remove(name string) {
	if p.Presets != nil {
		delete(p.Presets, SanitizeName(name))
	}
}

// Get returns the named preset.
func (p *PresetsConfig) Get(name string) (*Preset, error) {
	if len(p.Presets) == 0 {
		return nil, errors.New("no presets configured")
	}

	preset, ok := p.Presets[SanitizeName(name)]
	if !ok {
		names := p.Names()
		if len(names) > 5 {
			names = append(names[:5], "...")
		}
		return nil, fmt.Errorf("preset %q not found (available: %s)", name, strings.Join(names, ", "))
	}

	return &preset, nil
}

// Exists checks if a preset exists.
func (p *PresetsConfig) Exists(name string) bool {
	if p.Presets == nil {
		return false
	}
	_, ok := p.Presets[SanitizeName(name)]
	return ok
}

// Names returns the preset names in sorted order.
func (p *PresetsConfig) Names() []string {
	names := make([]string, 0, len(p.Presets))
	for name := range p.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply overlays the preset's non-zero fields on a copy of the simulation defaults.
func (p Preset) Apply(sim SimulationConfig) SimulationConfig {
	if p.Dragons > 0 {
		sim.InitialDragons = p.Dragons
	}
	if p.Interactions > 0 {
		sim.Interactions = p.Interactions
	}
	if p.Seed != 0 {
		sim.Seed = p.Seed
	}
	return sim
}
