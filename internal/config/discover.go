// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath names the environment variable that pins the config file.
const EnvConfigPath = "SORTARR_CONFIG"

const systemConfigPath = "/etc/sortarr/config.toml"

// DefaultPath returns $XDG_CONFIG_HOME/sortarr/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sortarr", "config.toml")
}

// SearchPaths lists the locations Discover tries after SORTARR_CONFIG, in
// order.
func SearchPaths() []string {
	return []string{"./config.toml", DefaultPath(), systemConfigPath}
}

// Discover returns the config file to load. SORTARR_CONFIG, when set, must
// name an existing file; otherwise the first existing SearchPaths entry
// wins.
func Discover() (string, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, envPath, err)
		}
		return envPath, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}
