package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "starcatch.yaml"

// Load loads the starcatch configuration.
// Search order: customPath -> ~/.starcatch/configs/starcatch.yaml -> ./configs/starcatch.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// The first file that exists is used; if it is invalid, Load fails rather than
// falling back.
func Load(customPath string) (StarcatchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StarcatchConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return StarcatchConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// A missing file moves on; a broken one is an error.
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		cfg, found, err := loadFile(path)
		if err != nil {
			return StarcatchConfig{}, err
		}
		if found {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultStarcatchYAML)
	if err != nil {
		return DefaultStarcatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile parses the file at path. found is false when the file does not exist.
func loadFile(path string) (cfg StarcatchConfig, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return StarcatchConfig{}, false, nil
	}
	if err != nil {
		return StarcatchConfig{}, false, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return StarcatchConfig{}, true, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, true, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (StarcatchConfig, error) {
	cfg := DefaultStarcatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StarcatchConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return StarcatchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starcatch", "configs", filename)
}
