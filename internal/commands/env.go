package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ruminaider/mode-manager/internal/config"
	"github.com/ruminaider/mode-manager/internal/roomodes"
	"github.com/ruminaider/mode-manager/internal/session"
	"github.com/ruminaider/mode-manager/internal/stacks"
)

// Env wires the file-backed collaborators for one workspace to a controller.
type Env struct {
	Config     config.Config
	Source     stacks.FileSource
	Workspace  *roomodes.Workspace
	Controller *session.Controller
}

// NewEnv builds the collaborators described by cfg. Nothing is read yet
// except the mode library.
func NewEnv(cfg config.Config, log *slog.Logger) (*Env, error) {
	lib, err := roomodes.LoadLibrary(cfg.LibraryPath())
	if err != nil {
		return nil, fmt.Errorf("loading mode library: %w", err)
	}
	src := stacks.FileSource{Dir: cfg.CatalogPath()}
	ws := &roomodes.Workspace{Path: cfg.RoomodesPath(), Library: lib}
	ctrl := session.New(src, ws, ws,
		session.WithParser(cfg.Parser()),
		session.WithLogger(log),
	)
	return &Env{Config: cfg, Source: src, Workspace: ws, Controller: ctrl}, nil
}

// OpenEnv builds an Env, loads the workspace selection and the catalog for
// locale (the configured locale when empty).
func OpenEnv(ctx context.Context, cfg config.Config, locale string, log *slog.Logger) (*Env, error) {
	env, err := NewEnv(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := env.Controller.Init(ctx); err != nil {
		return nil, err
	}
	if locale == "" {
		locale = cfg.Locale
	}
	if err := env.Controller.Load(ctx, stacks.SanitizeLocale(locale)); err != nil {
		return nil, err
	}
	return env, nil
}
