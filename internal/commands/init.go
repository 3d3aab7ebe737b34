package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/ruminaider/mode-manager/internal/config"
)

// ErrConfigExists is returned by InitConfig when a config is already present.
var ErrConfigExists = errors.New("config already exists")

// InitConfig writes cfg to path. An existing file is kept unless force is set.
func InitConfig(path string, cfg config.Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w at %s (use --force to overwrite)", ErrConfigExists, path)
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
