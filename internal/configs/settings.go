package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// SettingsFileName is the name of the settings document inside the pm home directory.
const SettingsFileName = "pm-settings.toml"

// DefaultHome returns the pm home directory, creating nothing.
func DefaultHome() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, "pm"), nil
}

// SettingsPath returns the settings document path inside home.
func SettingsPath(home string) string {
	return filepath.Join(home, SettingsFileName)
}
