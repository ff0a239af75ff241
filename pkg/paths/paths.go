package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under every XDG base directory.
const AppName = "statbadges"

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for statbadges
	EnvConfigDir = "STATBADGES_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for statbadges
	EnvDataDir = "STATBADGES_DATA_DIR"
)

// File names
const (
	// LocalConfigBase is the config file base name looked up in the working directory
	LocalConfigBase = "statbadges"

	// ConfigFileBase is the config file base name inside the config directory
	ConfigFileBase = "config"

	// StoreFileName is the snapshot database file name inside the data directory
	StoreFileName = "snapshots.db"
)

// ConfigExtensions are the config file extensions recognised, in lookup order.
var ConfigExtensions = []string{".toml", ".yaml", ".yml"}

// ConfigDir returns the statbadges config directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DataDir returns the statbadges data directory.
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.DataHome, AppName)
}

// StorePath returns the default snapshot database location.
func StorePath() string {
	return filepath.Join(DataDir(), StoreFileName)
}

// ConfigCandidates lists the config files to try, most specific first: the
// working directory, then the config directory.
func ConfigCandidates(workDir string) []string {
	var candidates []string
	for _, ext := range ConfigExtensions {
		candidates = append(candidates, filepath.Join(workDir, LocalConfigBase+ext))
	}
	for _, ext := range ConfigExtensions {
		candidates = append(candidates, filepath.Join(ConfigDir(), ConfigFileBase+ext))
	}
	return candidates
}

// FindConfigFile returns the first existing candidate, or "" when none exists.
func FindConfigFile(workDir string) string {
	for _, path := range ConfigCandidates(workDir) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
