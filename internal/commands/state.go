package commands

import (
	"os"

	"github.com/ruminaider/mode-manager/internal/config"
	"github.com/ruminaider/mode-manager/internal/roomodes"
	"github.com/ruminaider/mode-manager/internal/stacks"
)

// State describes what is on disk for a configuration, used to pick a
// sensible default screen and to explain empty results.
type State struct {
	ConfigExists    bool
	CatalogDirFound bool
	WorkspaceFile   bool
	Locales         []string // locales with a catalog file
	Committed       int      // modes listed in the workspace .roomodes
}

// DetectState inspects the files cfg points at. It is fast and never
// errors; anything unreadable counts as absent.
func DetectState(configPath string, cfg config.Config) State {
	var st State
	if _, err := os.Stat(configPath); err == nil {
		st.ConfigExists = true
	}
	if info, err := os.Stat(cfg.CatalogPath()); err == nil && info.IsDir() {
		st.CatalogDirFound = true
		st.Locales = stacks.FileSource{Dir: cfg.CatalogPath()}.Available()
	}
	if f, err := roomodes.Read(cfg.RoomodesPath()); err == nil {
		st.WorkspaceFile = true
		st.Committed = len(f.Slugs())
	}
	return st
}
