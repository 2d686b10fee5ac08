// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Display DisplayConfig `toml:"display"`
	Paths   PathsConfig   `toml:"paths"`
}

// DisplayConfig maps layout display settings.
type DisplayConfig struct {
	DateFormat     *int  `toml:"date-format"`
	ExerciseFormat *int  `toml:"exercise-format"`
	GroupNames     *bool `toml:"group-names"`
}

// PathsConfig overrides the default data locations.
type PathsConfig struct {
	DB  *string `toml:"db"`
	Log *string `toml:"log"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
