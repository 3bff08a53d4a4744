package global

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultConfigDir is the per-user directory everything persistent lives
// under: the config file plus the logs and saves subdirectories.
func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "wildfray")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveConfig writes the config file indented so it stays hand-editable.
func SaveConfig(config GlobalConfig) error {
	contents, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(DefaultConfigLocation(), contents, 0644)
}
