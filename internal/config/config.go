package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ruminaider/mode-manager/internal/catalog"
	"github.com/ruminaider/mode-manager/internal/paths"
	"github.com/ruminaider/mode-manager/internal/roomodes"
	"github.com/ruminaider/mode-manager/internal/stacks"
	"go.yaml.in/yaml/v3"
)

// CurrentVersion is written by Default and Save.
const CurrentVersion = "1"

// Config represents ~/.mode-manager/config.yaml.
type Config struct {
	Version        string   `yaml:"version"`
	Locale         string   `yaml:"locale"`
	CatalogDir     string   `yaml:"catalog_dir"`
	Workspace      string   `yaml:"workspace"`
	GeneralMarkers []string `yaml:"general_markers,omitempty"`
	LogFile        string   `yaml:"log_file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Version:        CurrentVersion,
		Locale:         stacks.DefaultLocale,
		CatalogDir:     "~/.mode-manager/catalog",
		Workspace:      ".",
		GeneralMarkers: append([]string(nil), catalog.DefaultGeneralMarkers...),
	}
}

// Parse parses config.yaml bytes into a Config. Missing fields take their
// default values and the result is normalized.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	cfg.GeneralMarkers = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg.normalize(), nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads the config at path. A missing file yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// normalize maps unsupported locales to the default and fills empty fields.
func (c Config) normalize() Config {
	def := Default()
	if c.Version == "" {
		c.Version = def.Version
	}
	c.Locale = stacks.SanitizeLocale(c.Locale)
	if c.CatalogDir == "" {
		c.CatalogDir = def.CatalogDir
	}
	if c.Workspace == "" {
		c.Workspace = def.Workspace
	}
	if len(c.GeneralMarkers) == 0 {
		c.GeneralMarkers = def.GeneralMarkers
	}
	return c
}

// CatalogPath is CatalogDir with ~ expanded.
func (c Config) CatalogPath() string {
	return paths.Expand(c.CatalogDir)
}

// WorkspacePath is Workspace with ~ expanded.
func (c Config) WorkspacePath() string {
	return paths.Expand(c.Workspace)
}

// LogPath is LogFile with ~ expanded; "" disables logging.
func (c Config) LogPath() string {
	return paths.Expand(c.LogFile)
}

// RoomodesPath is the workspace .roomodes file.
func (c Config) RoomodesPath() string {
	return filepath.Join(c.WorkspacePath(), roomodes.FileName)
}

// LibraryPath is the bundled .roomodes in the catalog directory that holds
// full mode definitions.
func (c Config) LibraryPath() string {
	return filepath.Join(c.CatalogPath(), roomodes.FileName)
}

// Parser returns a catalog parser using the configured general markers.
func (c Config) Parser() catalog.Parser {
	return catalog.NewParser(c.GeneralMarkers...)
}
