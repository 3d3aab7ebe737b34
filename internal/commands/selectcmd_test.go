package commands_test

import (
	"context"
	"testing"

	"github.com/ruminaider/mode-manager/internal/commands"
	"github.com/ruminaider/mode-manager/internal/roomodes"
	"github.com/ruminaider/mode-manager/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func committedSlugs(t *testing.T, env *commands.Env) []string {
	t.Helper()
	f, err := roomodes.Read(env.Workspace.Path)
	require.NoError(t, err)
	return f.Slugs()
}

func TestSelectAdd(t *testing.T) {
	env := openEnv(t, setupTestEnv(t), "en")
	ctx := context.Background()

	res, err := commands.SelectAdd(ctx, env, []string{"scout", "react-hooks"})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []session.OrderedSlug{{Slug: "scout", Order: 0}, {Slug: "react-hooks", Order: 1}}, res.Committed)
	assert.Equal(t, []string{"scout", "react-hooks"}, committedSlugs(t, env))

	defs, err := roomodes.Read(env.Workspace.Path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"slug": "react-hooks", "name": "Hooks Expert", "roleDefinition": "hooks"}`, string(defs.Definitions()["react-hooks"]))

	res, err = commands.SelectAdd(ctx, env, []string{"scout"})
	require.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestSelectAdd_UnknownSuggests(t *testing.T) {
	env := openEnv(t, setupTestEnv(t), "en")

	_, err := commands.SelectAdd(context.Background(), env, []string{"scout", "react-hoks"})
	require.Error(t, err)
	var unknown *commands.UnknownError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"react-hoks"}, unknown.Names)
	assert.Equal(t, "react-hooks", unknown.Suggestions["react-hoks"][0])
	assert.Contains(t, err.Error(), `did you mean "react-hooks"`)
	assert.Empty(t, env.Controller.Store().Slugs(), "nothing applied on error")
}

func TestSelectRemove(t *testing.T) {
	cfg := setupTestEnv(t)
	writeWorkspace(t, cfg, `{"customModes": [{"slug": "scout"}, {"slug": "legacy", "name": "Old"}, {"slug": "jest"}]}`)
	env := openEnv(t, cfg, "en")

	_, err := commands.SelectRemove(context.Background(), env, []string{"legacy"})
	require.NoError(t, err)
	assert.Equal(t, []string{"scout", "jest"}, committedSlugs(t, env))

	_, err = commands.SelectRemove(context.Background(), env, []string{"navigator"})
	var unknown *commands.UnknownError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "selected mode", unknown.Kind)
}

func TestSelectGroup(t *testing.T) {
	cfg := setupTestEnv(t)
	writeWorkspace(t, cfg, `{"customModes": [{"slug": "react-state"}]}`)
	env := openEnv(t, cfg, "en")
	ctx := context.Background()

	_, err := commands.SelectGroup(ctx, env, "framework-0/subgroup-0")
	require.NoError(t, err)
	assert.Equal(t, []string{"react-state", "react-hooks"}, committedSlugs(t, env))

	_, err = commands.SelectGroup(ctx, env, "framework-0/subgroup-0")
	require.NoError(t, err)
	assert.Empty(t, committedSlugs(t, env))

	_, err = commands.SelectGroup(ctx, env, "framework-0/subgrup-0")
	var unknown *commands.UnknownError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"framework-0/subgroup-0"}, unknown.Suggestions["framework-0/subgrup-0"][:1])
}

func TestSelectMove(t *testing.T) {
	cfg := setupTestEnv(t)
	writeWorkspace(t, cfg, `{"customModes": [{"slug": "navigator"}, {"slug": "scout"}, {"slug": "jest"}]}`)
	env := openEnv(t, cfg, "en")

	_, err := commands.SelectMove(context.Background(), env, "jest", "navigator")
	require.NoError(t, err)
	assert.Equal(t, []string{"jest", "navigator", "scout"}, committedSlugs(t, env))

	_, err = commands.SelectMove(context.Background(), env, "jest", "react-hooks")
	assert.Error(t, err)
}

func TestSelectClear(t *testing.T) {
	cfg := setupTestEnv(t)
	writeWorkspace(t, cfg, `{"customModes": [{"slug": "navigator"}, {"slug": "legacy"}]}`)
	env := openEnv(t, cfg, "en")

	res, err := commands.SelectClear(context.Background(), env)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Empty(t, res.Committed)
	assert.Empty(t, committedSlugs(t, env))
}
