package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/ambusnake.yaml
var defaultYAML []byte

const fileName = "ambusnake.yaml"

// Load reads the configuration and reports where it came from.
// Search order: customPath -> ~/.ambusnake/config.yaml -> ./configs/ambusnake.yaml -> embedded default
//
// Keys missing from a file keep their Default value. Only an explicit
// customPath that cannot be read or parsed is an error.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return Default(), "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if cfg, err := parseFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), "built-in", nil
	}
	return cfg, "embedded", nil
}

func parseFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ambusnake", "config.yaml")
}
