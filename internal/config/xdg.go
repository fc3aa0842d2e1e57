package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigDir returns the XDG-compliant config directory for tdo
// Typically ~/.config/tdo/ on Linux
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "tdo")
}

// ConfigPath returns the full path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json5")
}

// CacheDir returns the XDG-compliant cache directory for tdo
// Typically ~/.cache/tdo/ on Linux
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, "tdo")
}

// DataDir returns the XDG-compliant data directory for tdo
// Typically ~/.local/share/tdo/ on Linux
func DataDir() string {
	return filepath.Join(xdg.DataHome, "tdo")
}
