package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const starfallFile = "starfall.yaml"

// LoadStarfall loads Starfall configuration.
// Search order: customPath -> ~/.starfall/configs/starfall.yaml -> ./configs/starfall.yaml -> embedded default
//
// Documents are decoded over the hard-coded defaults, so a file only needs
// the keys it changes. A custom path that cannot be read or parsed is an
// error; the other locations are skipped silently when absent or broken.
func LoadStarfall(customPath string) (StarfallConfig, error) {
	cfg := DefaultStarfallConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultStarfallConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		return candidate, candidate.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultStarfallYAML, &cfg); err != nil {
		return DefaultStarfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// searchPaths lists the non-embedded locations in lookup order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(starfallFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", starfallFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfall", "configs", filename)
}
