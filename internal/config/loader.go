package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMines loads the minesweeper presets.
// Search order: customPath -> ~/.mines/configs/mines.yaml -> ./configs/mines.yaml -> embedded default
//
// Presets and fields missing from a file fall back to the built-in ones, so
// a file may override just a title or a time limit.
func LoadMines(customPath string) (MinesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MinesConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMines(data)
		if err != nil {
			return MinesConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("mines.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMines(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/mines.yaml"); err == nil {
		if cfg, err := parseMines(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMines(defaultMinesYAML)
	if err != nil {
		return DefaultMinesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// presetFile is a preset as written in YAML. TimeLimit is a pointer so an
// explicit 0 (no limit) can be told apart from an omitted key.
type presetFile struct {
	Title     string `yaml:"title"`
	Rows      int    `yaml:"rows"`
	Cols      int    `yaml:"cols"`
	Mines     int    `yaml:"mines"`
	TimeLimit *int   `yaml:"time_limit"`
}

type minesFile struct {
	Presets map[Preset]presetFile `yaml:"presets"`
}

// parseMines decodes YAML over the built-in presets and validates the result.
// Omitted fields keep the built-in values; the board size is replaced only
// as a whole.
func parseMines(data []byte) (MinesConfig, error) {
	var file minesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return MinesConfig{}, err
	}

	cfg := DefaultMinesConfig()
	for p, f := range file.Presets {
		pc := cfg.Presets[p]
		if f.Title != "" {
			pc.Title = f.Title
		}
		if f.Rows != 0 || f.Cols != 0 || f.Mines != 0 {
			pc.Rows, pc.Cols, pc.Mines = f.Rows, f.Cols, f.Mines
		}
		if f.TimeLimit != nil {
			pc.TimeLimit = *f.TimeLimit
		}
		cfg.Presets[p] = pc
	}

	if err := cfg.Validate(); err != nil {
		return MinesConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mines", "configs", filename)
}
