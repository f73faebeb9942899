package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "evasion.yaml"

// Load loads the session configuration.
// Search order: customPath -> ~/.evasion/configs/evasion.yaml -> ./configs/evasion.yaml -> embedded default.
// Files are decoded over the built-in defaults, so a file only needs the keys
// it changes.
func Load(customPath string) (EvasionConfig, error) {
	cfg := DefaultEvasionConfig()

	// A custom path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultEvasionConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultEvasionYAML, &cfg); err != nil {
		return DefaultEvasionConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path in the user's config directory, or "" if
// the home directory is unknown.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".evasion", "configs", filename)
}

// ApplyPreset selects the starting difficulty preset.
func ApplyPreset(cfg *EvasionConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
}
