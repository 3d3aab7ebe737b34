package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/mode-manager/internal/commands"
	"github.com/ruminaider/mode-manager/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDetectState(t *testing.T) {
	cfg := setupTestEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	st := commands.DetectState(cfgPath, cfg)
	assert.False(t, st.ConfigExists)
	assert.True(t, st.CatalogDirFound)
	assert.Equal(t, []string{"en", "ua"}, st.Locales)
	assert.False(t, st.WorkspaceFile)

	os.WriteFile(cfgPath, []byte("locale: en\n"), 0644)
	writeWorkspace(t, cfg, `{"customModes": [{"slug": "a"}, {"slug": "b"}]}`)
	st = commands.DetectState(cfgPath, cfg)
	assert.True(t, st.ConfigExists)
	assert.True(t, st.WorkspaceFile)
	assert.Equal(t, 2, st.Committed)
}

func TestDetectState_NothingOnDisk(t *testing.T) {
	cfg := config.Default()
	cfg.CatalogDir = filepath.Join(t.TempDir(), "missing")
	cfg.Workspace = filepath.Join(t.TempDir(), "missing")

	st := commands.DetectState(filepath.Join(t.TempDir(), "none.yaml"), cfg)
	assert.Equal(t, commands.State{}, st)
}
