package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ruminaider/mode-manager/internal/commands"
	"github.com/ruminaider/mode-manager/internal/config"
	"github.com/ruminaider/mode-manager/internal/logging"
	"github.com/ruminaider/mode-manager/internal/paths"
	"github.com/spf13/cobra"
)

// Flags shared by every subcommand.
var (
	configFlag    string
	localeFlag    string
	workspaceFlag string
	catalogFlag   string
	logFileFlag   string
	debugFlag     bool
)

func addGlobalFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&configFlag, "config", "", "config file (default ~/.mode-manager/config.yaml)")
	f.StringVar(&localeFlag, "locale", "", "catalog locale: en, ru or ua")
	f.StringVarP(&workspaceFlag, "workspace", "w", "", "workspace directory holding .roomodes")
	f.StringVar(&catalogFlag, "catalog-dir", "", "directory with stacks_by_framework_<locale>.md files")
	f.StringVar(&logFileFlag, "log-file", "", "append diagnostic log records to this file")
	f.BoolVar(&debugFlag, "debug", false, "log at debug level")
}

func configPath() string {
	if configFlag != "" {
		return paths.Expand(configFlag)
	}
	return paths.ConfigFile()
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return config.Config{}, err
	}
	if workspaceFlag != "" {
		cfg.Workspace = workspaceFlag
	}
	if catalogFlag != "" {
		cfg.CatalogDir = catalogFlag
	}
	if logFileFlag != "" {
		cfg.LogFile = logFileFlag
	}
	return cfg, nil
}

// runEnv bundles an opened Env with the log file behind it.
type runEnv struct {
	env   *commands.Env
	log   *slog.Logger
	close func() error
}

// openEnv loads config, opens the log and the workspace. Callers must
// call close.
func openEnv(ctx context.Context) (*runEnv, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, closeLog, err := logging.Open(cfg.LogPath(), debugFlag)
	if err != nil {
		return nil, err
	}
	env, err := commands.OpenEnv(ctx, cfg, localeFlag, log)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("opening workspace: %w", err)
	}
	return &runEnv{env: env, log: log, close: closeLog}, nil
}
