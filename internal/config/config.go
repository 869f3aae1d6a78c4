// Package config provides YAML-based preset loading for the minesweeper game.
package config

import (
	"fmt"
)

// Preset names a bundle of board dimensions, mine count and time limit.
type Preset string

const (
	PresetBeginner     Preset = "beginner"
	PresetIntermediate Preset = "intermediate"
	PresetAdvanced     Preset = "advanced"
)

// Presets lists the built-in presets from easiest to hardest.
var Presets = []Preset{PresetBeginner, PresetIntermediate, PresetAdvanced}

// ParsePreset converts user input to a Preset. Empty input means beginner.
func ParsePreset(s string) (Preset, error) {
	if s == "" {
		return PresetBeginner, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (want beginner, intermediate or advanced)", s)
}

// MinesConfig contains all configuration for the minesweeper game.
type MinesConfig struct {
	Presets map[Preset]PresetConfig `yaml:"presets"`
}

// PresetConfig defines one board preset.
type PresetConfig struct {
	Title     string `yaml:"title"`
	Rows      int    `yaml:"rows"`
	Cols      int    `yaml:"cols"`
	Mines     int    `yaml:"mines"`
	TimeLimit int    `yaml:"time_limit"` // Seconds, 0 = unlimited
}

// Validate checks that the preset describes a playable board.
func (p PresetConfig) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", p.Rows, p.Cols)
	}
	if p.Mines <= 0 || p.Mines >= p.Rows*p.Cols {
		return fmt.Errorf("config: mines must be in [1, %d), got %d", p.Rows*p.Cols, p.Mines)
	}
	if p.TimeLimit < 0 {
		return fmt.Errorf("config: negative time limit %d", p.TimeLimit)
	}
	return nil
}

// Lookup returns the settings for a preset.
func (c MinesConfig) Lookup(p Preset) (PresetConfig, error) {
	pc, ok := c.Presets[p]
	if !ok {
		return PresetConfig{}, fmt.Errorf("config: preset %q not configured", p)
	}
	return pc, nil
}

// Validate checks every configured preset.
func (c MinesConfig) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("config: no presets configured")
	}
	for p, pc := range c.Presets {
		if err := pc.Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", p, err)
		}
	}
	return nil
}

// OverrideTimeLimit replaces the time limit of every preset.
// Negative values leave the config unchanged.
func (c *MinesConfig) OverrideTimeLimit(seconds int) {
	if seconds < 0 {
		return
	}
	for p, pc := range c.Presets {
		pc.TimeLimit = seconds
		c.Presets[p] = pc
	}
}
