package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Explicit path takes priority over the standard locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for a scene file in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./scene.yaml",
		filepath.Join(ConfigDir(), "scene.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "glcore")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "glcore")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "glcore")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "glcore")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// A models list in the file replaces the default one.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// UnmarshalYAML defaults an omitted scale to (1, 1, 1) so a model entry
// without one does not collapse to a singular matrix.
func (m *ModelConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain ModelConfig
	p := plain{Scale: [3]float32{1, 1, 1}}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*m = ModelConfig(p)
	return nil
}
