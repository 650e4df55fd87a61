// Package config holds the editor and export settings that the interaction
// layer passes into the core: grid parameters, wall stroke widths, and
// render options. Settings affect rendering and snapping, never the editing
// algorithms themselves.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Grid parameterizes the snapping subsystem.
type Grid struct {
	Step      float64 `yaml:"step" json:"step"`
	Tolerance float64 `yaml:"tolerance" json:"tolerance"`
}

// Render parameterizes the PNG exporter.
type Render struct {
	Width             int     `yaml:"width" json:"width"`
	Height            int     `yaml:"height" json:"height"`
	Scale             float64 `yaml:"scale" json:"scale"`
	Padding           float64 `yaml:"padding" json:"padding"`
	ExternalWallWidth float64 `yaml:"external_wall_width" json:"external_wall_width"`
	InternalWallWidth float64 `yaml:"internal_wall_width" json:"internal_wall_width"`
	Background        string  `yaml:"background" json:"background"`
	ShowNames         bool    `yaml:"show_names" json:"show_names"`
	ShowDimensions    bool    `yaml:"show_dimensions" json:"show_dimensions"`
}

// Config is the full settings document.
type Config struct {
	Grid   Grid   `yaml:"grid" json:"grid"`
	Render Render `yaml:"render" json:"render"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Grid: Grid{
			Step:      1.0,
			Tolerance: 0.2,
		},
		Render: Render{
			Width:             1024,
			Height:            768,
			Scale:             2.0,
			Padding:           40,
			ExternalWallWidth: 6,
			InternalWallWidth: 3,
			Background:        "#ffffff",
			ShowNames:         true,
			ShowDimensions:    true,
		},
	}
}

// Load reads settings from a YAML file. Missing fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return cfg, nil
}
