package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := embeddedBreakout()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("breakout.yaml"),
		filepath.Join("configs", "breakout.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := embeddedBreakout()
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			continue
		}
		if err := fileCfg.Validate(); err != nil {
			return fileCfg, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return fileCfg, nil
	}

	return cfg, nil
}

// embeddedBreakout decodes the embedded default YAML.
func embeddedBreakout() BreakoutConfig {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
