// Package qrconfig loads named encode presets (version, error correction
// level, mask, and output rendering) from a YAML file, so cmd/qrencode can
// be pointed at a preset instead of repeating flags.
package qrconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level document: a named set of Presets plus the default
// preset to use when none is named on the command line.
type Config struct {
	Default string            `yaml:"default"`
	Presets map[string]Preset `yaml:"presets"`
}

// Preset is one named encoding configuration.
type Preset struct {
	Version int    `yaml:"version"`
	ECC     string `yaml:"ecc"`
	Mask    int    `yaml:"mask"` // -1 selects the lowest-penalty mask automatically.
	Scale   int    `yaml:"scale"`
	Border  int    `yaml:"border"`
	Out     string `yaml:"out"`
}

func defaults() *Config {
	return &Config{
		Default: "default",
		Presets: map[string]Preset{
			"default": {
				Version: 1,
				ECC:     "M",
				Mask:    -1,
				Scale:   8,
				Border:  4,
			},
		},
	}
}

// Load reads cfg from path. An empty file yields the built-in defaults;
// otherwise the file is decoded over those defaults. A missing or unreadable
// file is returned as an error.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Preset looks up a named preset, or the config's default preset if name is
// empty.
func (c *Config) Preset(name string) (Preset, error) {
	if name == "" {
		name = c.Default
	}
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("qrconfig: no preset named %q", name)
	}
	return p, nil
}
