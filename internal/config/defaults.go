package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultMinesConfig returns the built-in presets.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Presets: map[Preset]PresetConfig{
			PresetBeginner: {
				Title:     "Beginner",
				Rows:      6,
				Cols:      9,
				Mines:     11,
				TimeLimit: 300,
			},
			PresetIntermediate: {
				Title:     "Intermediate",
				Rows:      12,
				Cols:      18,
				Mines:     36,
				TimeLimit: 180,
			},
			PresetAdvanced: {
				Title:     "Advanced",
				Rows:      21,
				Cols:      26,
				Mines:     92,
				TimeLimit: 660,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMinesYAML
}
