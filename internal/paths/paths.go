package paths

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

func home() string {
	h, err := homedir.Dir()
	if err != nil {
		h, _ = os.UserHomeDir()
	}
	return h
}

// AppDir returns ~/.mode-manager.
func AppDir() string {
	return filepath.Join(home(), ".mode-manager")
}

// ConfigFile returns ~/.mode-manager/config.yaml.
func ConfigFile() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// CatalogDir returns ~/.mode-manager/catalog, the default home of the
// stacks_by_framework files and the bundled .roomodes library.
func CatalogDir() string {
	return filepath.Join(AppDir(), "catalog")
}

// LogFile returns ~/.mode-manager/mode-manager.log.
func LogFile() string {
	return filepath.Join(AppDir(), "mode-manager.log")
}

// Expand resolves a leading ~ in path. Other paths are returned unchanged.
func Expand(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
