// Package xdg provides XDG Base Directory paths for codebook's global
// config file, cache manifest, and dictionary cache, adapted from
// holomush's internal/xdg package and extended with a Windows AppData
// fallback since dictionaries are a desktop-editor-adjacent concern.
package xdg

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "codebook"

// ConfigDir returns the directory holding the global config file.
// Checks XDG_CONFIG_HOME first, then falls back to %AppData% on Windows
// or ~/.config elsewhere.
func ConfigDir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, appName)
	}
	if runtime.GOOS == "windows" {
		if base := os.Getenv("AppData"); base != "" {
			return filepath.Join(base, appName)
		}
	}
	return filepath.Join(os.Getenv("HOME"), ".config", appName)
}

// DataDir returns the directory holding downloaded dictionaries and the
// cache manifest. Checks XDG_DATA_HOME first, falls back to
// ~/.local/share.
func DataDir() string {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, appName)
	}
	if runtime.GOOS == "windows" {
		if base := os.Getenv("AppData"); base != "" {
			return filepath.Join(base, appName)
		}
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", appName)
}

// StateDir returns the XDG state directory for codebook. Checks
// XDG_STATE_HOME first, falls back to ~/.local/state.
func StateDir() string {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}
	return filepath.Join(base, appName)
}

// GlobalConfigFile returns the path of the global config file consulted
// when a project does not opt out with use_global=false.
func GlobalConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// CacheDir returns the directory holding downloaded dictionary archives
// and the cache manifest.
func CacheDir() string {
	return filepath.Join(DataDir(), "dictionaries")
}

// EnsureDir creates a directory and all parent directories if they don't
// exist, with 0700 permissions since cached dictionaries and config may
// carry user-specific customizations.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}
