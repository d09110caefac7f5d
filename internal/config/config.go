// Package config provides configuration defaults and path utilities.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Default locations, all overridable via config file or DOCUFLOW_* env vars.
const (
	defaultConfigDir = "~/.config/docuflow"
	defaultDBFile    = "docuflow.db"
	defaultOutputDir = "~/Documents/docuflow/routed"
)

// SetDefaults registers configuration defaults on the given viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(defaultConfigDir, defaultDBFile))
	v.SetDefault("routing.output_dir", defaultOutputDir)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return ExpandPath(defaultConfigDir)
}

// DatabasePath resolves the database path from configuration, expanding
// ~ and environment variables.
func DatabasePath(v *viper.Viper) string {
	return ExpandPath(v.GetString("database.path"))
}

// OutputDir resolves the routing destination root from configuration.
func OutputDir(v *viper.Viper) string {
	return ExpandPath(v.GetString("routing.output_dir"))
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
