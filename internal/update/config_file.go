package update

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfigFile overlays the YAML file at path onto base. A missing or empty
// file leaves base unchanged.
func LoadConfigFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return base, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("config: read %s: %w", trimmed, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return base, nil
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("config: parse %s: %w", trimmed, err)
	}
	return cfg, nil
}

// SaveConfigFile writes cfg as YAML, replacing path atomically.
func SaveConfigFile(path string, cfg RuntimeConfig) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
