// ABOUTME: Standard filesystem paths for cellterm configuration, themes and logs
// ABOUTME: Resolves ~/.cellterm/ as the global directory

package config

import (
	"os"
	"path/filepath"
)

const globalDirName = ".cellterm"

// GlobalDir returns the user-global config directory (~/.cellterm/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ConfigFile returns the path to the default config file.
func ConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ThemesDir returns the directory searched for theme files by name.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

// LogFile returns the default log file path.
func LogFile() string {
	return filepath.Join(GlobalDir(), "logs", "cellterm.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
