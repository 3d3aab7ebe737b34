package stacks_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruminaider/mode-manager/internal/stacks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSanitizeLocale(t *testing.T) {
	assert.Equal(t, "en", stacks.SanitizeLocale("en"))
	assert.Equal(t, "ru", stacks.SanitizeLocale("ru"))
	assert.Equal(t, "ua", stacks.SanitizeLocale(" UA "))
	assert.Equal(t, "en", stacks.SanitizeLocale("de"))
	assert.Equal(t, "en", stacks.SanitizeLocale(""))
	assert.Equal(t, "en", stacks.SanitizeLocale("../../etc/passwd"))
}

func TestLocales(t *testing.T) {
	l := stacks.Locales()
	assert.Equal(t, []string{"en", "ru", "ua"}, l)
	l[0] = "xx"
	assert.Equal(t, "en", stacks.Locales()[0])
}

func TestFileSource_Catalog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stacks_by_framework_en.md", "# 1. General\n")
	writeFile(t, dir, "stacks_by_framework_ua.md", "# 1. Загального\n")
	src := stacks.FileSource{Dir: dir}

	text, err := src.Catalog(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, "# 1. General\n", text)

	text, err = src.Catalog(context.Background(), "fr")
	require.NoError(t, err)
	assert.Equal(t, "# 1. General\n", text, "unknown locale falls back to en")

	_, err = src.Catalog(context.Background(), "ru")
	assert.ErrorIs(t, err, stacks.ErrCatalogNotFound)
	assert.Contains(t, err.Error(), "stacks_by_framework_ru.md")

	assert.Equal(t, []string{"en", "ua"}, src.Available())
}

func TestFileSource_CustomPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "modes-ru.md", "ru text")
	src := stacks.FileSource{Dir: dir, Pattern: "modes-%s.md"}

	assert.Equal(t, filepath.Join(dir, "modes-ru.md"), src.Path("ru"))
	text, err := src.Catalog(context.Background(), "ru")
	require.NoError(t, err)
	assert.Equal(t, "ru text", text)
}

func TestFileSource_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stacks_by_framework_en.md", "x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stacks.FileSource{Dir: dir}.Catalog(ctx, "en")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSource_Watch(t *testing.T) {
	dir := t.TempDir()
	src := stacks.FileSource{Dir: dir}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := src.Watch(ctx)
	require.NoError(t, err)

	writeFile(t, dir, "unrelated.txt", "ignored")
	writeFile(t, dir, "stacks_by_framework_ru.md", "# 1. Общего\n")

	select {
	case c := <-changes:
		assert.Equal(t, "ru", c.Locale)
	case <-time.After(5 * time.Second):
		t.Fatal("no change received")
	}

	cancel()
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		case <-time.After(5 * time.Second):
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestFileSource_WatchMissingDir(t *testing.T) {
	_, err := stacks.FileSource{Dir: filepath.Join(t.TempDir(), "nope")}.Watch(context.Background())
	assert.Error(t, err)

	_, err = stacks.FileSource{}.Watch(context.Background())
	assert.Error(t, err)
}
