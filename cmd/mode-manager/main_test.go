package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/ruminaider/mode-manager/internal/roomodes"
	"github.com/ruminaider/mode-manager/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliStacks = `# 1. General-purpose modes
## 1.1 Core
- Navigator (navigator)
- Scout (scout)
# 2. React
## 2.1 Hooks
- Hooks Expert (react-hooks)
`

// setupCLI lays out a catalog and an empty workspace and returns the
// global flags pointing at them.
func setupCLI(t *testing.T) (workspace string, flags []string) {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	catalogDir := filepath.Join(dir, "catalog")
	workspace = filepath.Join(dir, "ws")
	require.NoError(t, os.MkdirAll(catalogDir, 0755))
	require.NoError(t, os.MkdirAll(workspace, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "stacks_by_framework_en.md"), []byte(cliStacks), 0644))

	t.Cleanup(func() {
		configFlag, localeFlag, workspaceFlag, catalogFlag, logFileFlag = "", "", "", "", ""
		debugFlag = false
		rootCmd.SetArgs(nil)
	})
	return workspace, []string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--workspace", workspace,
		"--catalog-dir", catalogDir,
		"--locale", "en",
	}
}

func run(t *testing.T, flags []string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append(append([]string(nil), flags...), args...))
	return rootCmd.Execute()
}

func workspaceSlugs(t *testing.T, workspace string) []string {
	t.Helper()
	f, err := roomodes.Read(filepath.Join(workspace, roomodes.FileName))
	require.NoError(t, err)
	return f.Slugs()
}

func TestSelectCommands(t *testing.T) {
	ws, flags := setupCLI(t)

	require.NoError(t, run(t, flags, "select", "add", "scout", "react-hooks"))
	assert.Equal(t, []string{"scout", "react-hooks"}, workspaceSlugs(t, ws))

	require.NoError(t, run(t, flags, "select", "group", "general-purpose/subgroup-0"))
	assert.Equal(t, []string{"scout", "react-hooks", "navigator"}, workspaceSlugs(t, ws))

	require.NoError(t, run(t, flags, "select", "move", "navigator", "--before", "scout"))
	assert.Equal(t, []string{"navigator", "scout", "react-hooks"}, workspaceSlugs(t, ws))

	require.NoError(t, run(t, flags, "select", "rm", "scout"))
	assert.Equal(t, []string{"navigator", "react-hooks"}, workspaceSlugs(t, ws))

	require.NoError(t, run(t, flags, "select", "clear", "--yes"))
	assert.Empty(t, workspaceSlugs(t, ws))
}

func TestSelectAddUnknownSlug(t *testing.T) {
	ws, flags := setupCLI(t)
	err := run(t, flags, "select", "add", "scot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "scout"`)

	_, statErr := os.Stat(filepath.Join(ws, roomodes.FileName))
	assert.True(t, os.IsNotExist(statErr), "nothing is written on error")
}

func TestStatusAndList(t *testing.T) {
	_, flags := setupCLI(t)
	require.NoError(t, run(t, flags, "select", "add", "scout"))
	assert.NoError(t, run(t, flags, "status"))
	assert.NoError(t, run(t, flags, "list"))
	assert.NoError(t, run(t, flags, "list", "--selected"))
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	configFlag = filepath.Join(dir, "missing.yaml")
	workspaceFlag = "/tmp/ws"
	catalogFlag = "/tmp/catalog"
	logFileFlag = "/tmp/mm.log"
	t.Cleanup(func() {
		configFlag, workspaceFlag, catalogFlag, logFileFlag = "", "", "", ""
	})

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ws", cfg.Workspace)
	assert.Equal(t, "/tmp/catalog", cfg.CatalogDir)
	assert.Equal(t, "/tmp/mm.log", cfg.LogFile)
	assert.Equal(t, "en", cfg.Locale)
}

func TestMarkers(t *testing.T) {
	color.NoColor = true
	assert.Equal(t, "[x]", triStateMarker(selection.Full))
	assert.Equal(t, "[-]", triStateMarker(selection.Partial))
	assert.Equal(t, "[ ]", triStateMarker(selection.Unselected))
	assert.Equal(t, "[x]", entryMarker(true))
	assert.Equal(t, "[ ]", entryMarker(false))
}
