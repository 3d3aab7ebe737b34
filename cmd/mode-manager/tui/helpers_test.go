package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/mode-manager/internal/catalog"
	"github.com/ruminaider/mode-manager/internal/commands"
	"github.com/ruminaider/mode-manager/internal/config"
	"github.com/ruminaider/mode-manager/internal/selection"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

const testStacks = `# 1. General-purpose modes
## 1.1 Core
Coordination modes.
- 🧭 Navigator (navigator)
- Scout (scout)
# 2. React
## 2.1 Hooks
- Hooks Expert (react-hooks)
- State Expert (react-state)
## 2.2 Testing
- Jest Runner (jest)
`

const testStacksUA = `# 1. Режими загального призначення
## 1.1 Ядро
- 🧭 Навігатор (navigator)
`

// newTestEnv lays out an en and ua catalog and a workspace holding
// workspaceJSON (no file when empty), then opens it.
func newTestEnv(t *testing.T, workspaceJSON string) *commands.Env {
	t.Helper()
	catalogDir := t.TempDir()
	workspace := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "stacks_by_framework_en.md"), []byte(testStacks), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "stacks_by_framework_ua.md"), []byte(testStacksUA), 0644))
	if workspaceJSON != "" {
		require.NoError(t, os.WriteFile(filepath.Join(workspace, ".roomodes"), []byte(workspaceJSON), 0644))
	}

	cfg := config.Default()
	cfg.CatalogDir = catalogDir
	cfg.Workspace = workspace
	env, err := commands.OpenEnv(context.Background(), cfg, "en", nil)
	require.NoError(t, err)
	return env
}

func newTestModel(t *testing.T, workspaceJSON string) Model {
	t.Helper()
	m := NewModel(context.Background(), newTestEnv(t, workspaceJSON))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return next.(Model)
}

func testView(slugs ...string) selection.View {
	return selection.Derive(catalog.Parse(testStacks), slugs)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg to the model.
func press(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// pressAndDeliver sends msg, then feeds the message its command produces
// back into the model, the way the event loop would.
func pressAndDeliver(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	m, cmd := press(m, msg)
	require.NotNil(t, cmd, "expected a command for %v", msg)
	m, _ = press(m, cmd())
	return m
}
