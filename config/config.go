package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the navbar configuration directory. NAVBAR_CONFIG_DIR takes
// precedence; otherwise XDG_CONFIG_HOME is respected on Unix and APPDATA on
// Windows.
func Dir() string {
	if dir := os.Getenv("NAVBAR_CONFIG_DIR"); dir != "" {
		return dir
	}

	var base string
	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "navbar")
}

// InitFile returns the path to init.lua.
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}

// HasInitFile reports whether init.lua exists.
func HasInitFile() bool {
	_, err := os.Stat(InitFile())
	return err == nil
}
