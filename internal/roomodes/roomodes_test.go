package roomodes_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/mode-manager/internal/roomodes"
	"github.com/ruminaider/mode-manager/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workspaceJSON = `{
  "version": 2,
  "customModes": [
    {"slug": "scout", "name": "Scout", "roleDefinition": "local edit", "groups": ["read"]},
    {"name": "no slug"},
    {"slug": 7},
    {"slug": "navigator", "name": "Navigator"}
  ]
}`

const libraryJSON = `{
  "customModes": [
    {"slug": "scout", "name": "Scout", "roleDefinition": "library"},
    {"slug": "hooks", "name": "Hooks Expert", "roleDefinition": "react hooks"},
    {"slug": "state", "name": "State Expert"}
  ]
}`

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestParse(t *testing.T) {
	f, err := roomodes.Parse([]byte(workspaceJSON))
	require.NoError(t, err)

	assert.Len(t, f.CustomModes, 4)
	assert.Equal(t, []string{"scout", "navigator"}, f.Slugs())
	assert.Contains(t, f.Extra, "version")
	assert.NotContains(t, f.Extra, "customModes")
}

func TestParse_Shapes(t *testing.T) {
	f, err := roomodes.Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, f.Slugs())

	f, err = roomodes.Parse([]byte(`{"customModes": null}`))
	require.NoError(t, err)
	assert.Empty(t, f.Slugs())

	_, err = roomodes.Parse([]byte(`{"customModes": {"slug": "a"}}`))
	assert.Error(t, err)

	_, err = roomodes.Parse([]byte(`not json`))
	assert.Error(t, err)
}

func TestMarshal_PreservesUnknownFields(t *testing.T) {
	f, err := roomodes.Parse([]byte(workspaceJSON))
	require.NoError(t, err)

	data, err := roomodes.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])

	var back map[string]any
	require.NoError(t, json.Unmarshal(data, &back))
	assert.EqualValues(t, 2, back["version"])
	modes := back["customModes"].([]any)
	require.Len(t, modes, 4)
	first := modes[0].(map[string]any)
	assert.Equal(t, "local edit", first["roleDefinition"])
	assert.Equal(t, []any{"read"}, first["groups"])
}

func TestLoadLibrary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".roomodes")
	write(t, path, libraryJSON)

	lib, err := roomodes.LoadLibrary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hooks", "scout", "state"}, lib.Slugs())

	lib, err = roomodes.LoadLibrary(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, lib)
}

func TestWorkspace_LoadMissingFile(t *testing.T) {
	ws := roomodes.NewWorkspace(t.TempDir(), nil)
	slugs, err := ws.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, slugs)
}

func TestWorkspace_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, ".roomodes"), "{broken")
	_, err := roomodes.NewWorkspace(dir, nil).Load(context.Background())
	assert.Error(t, err)
}

func TestWorkspace_ApplyResolvesDefinitions(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, ".roomodes"), workspaceJSON)
	libPath := filepath.Join(dir, "library.json")
	write(t, libPath, libraryJSON)
	lib, err := roomodes.LoadLibrary(libPath)
	require.NoError(t, err)

	ws := roomodes.NewWorkspace(dir, lib)
	err = ws.Apply(context.Background(), []session.OrderedSlug{
		{Slug: "unknown", Order: 3},
		{Slug: "hooks", Order: 0},
		{Slug: "scout", Order: 1},
		{Slug: "hooks", Order: 2},
	})
	require.NoError(t, err)

	slugs, err := ws.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"hooks", "scout", "unknown"}, slugs)

	f, err := roomodes.Read(ws.Path)
	require.NoError(t, err)
	defs := f.Definitions()
	assert.JSONEq(t, `{"slug": "hooks", "name": "Hooks Expert", "roleDefinition": "react hooks"}`, string(defs["hooks"]))
	assert.JSONEq(t, `{"slug": "scout", "name": "Scout", "roleDefinition": "local edit", "groups": ["read"]}`, string(defs["scout"]), "workspace definition wins over library")
	assert.JSONEq(t, `{"slug": "unknown"}`, string(defs["unknown"]))
	assert.Contains(t, f.Extra, "version")
}

func TestWorkspace_ApplyCreatesFileAndLeavesNoTemp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")
	ws := roomodes.NewWorkspace(dir, roomodes.Library{})

	require.NoError(t, ws.Apply(context.Background(), nil))

	data, err := os.ReadFile(ws.Path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"customModes": []}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".roomodes", entries[0].Name())
}

func TestWorkspace_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ws := roomodes.NewWorkspace(t.TempDir(), nil)

	_, err := ws.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, ws.Apply(ctx, nil), context.Canceled)
}
