// Package paths resolves where the roster tool keeps its config.yaml and its
// edit journal, and expands user-supplied roster file paths.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppName names the per-user config and data directories.
const AppName = "ootp-roster"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "ROSTER_CONFIG_DIR"
	EnvDataDir   = "ROSTER_DATA_DIR"
)

// platformDir holds platform lookups that tests override.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform config directory.
//
// Linux:   $XDG_CONFIG_HOME/ootp-roster (fallback ~/.config/ootp-roster)
// macOS:   ~/Library/Application Support/ootp-roster
// Windows: %APPDATA%/ootp-roster
func DefaultConfigDir() (string, error) {
	return platformPath("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform data directory.
//
// Linux:   $XDG_DATA_HOME/ootp-roster (fallback ~/.local/share/ootp-roster)
// macOS and Windows: same as DefaultConfigDir.
func DefaultDataDir() (string, error) {
	return platformPath("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func platformPath(xdgVar, homeRel string) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRel, AppName), nil
}

// ResolveConfigDir returns the config directory: flag, then
// ROSTER_CONFIG_DIR, then DefaultConfigDir. Results are absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return Expand(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return Expand(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory: flag, then the config.yaml
// value, then ROSTER_DATA_DIR, then DefaultDataDir. Results are absolute.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, v := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if v != "" {
			return Expand(v)
		}
	}
	return DefaultDataDir()
}

// Expand replaces a leading "~/" with the home directory and makes the
// result absolute. An empty path stays empty.
func Expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
