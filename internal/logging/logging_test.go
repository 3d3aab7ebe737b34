package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/mode-manager/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenEmptyPathDiscards(t *testing.T) {
	l, closeFn, err := logging.Open("", true)
	require.NoError(t, err)
	l.Info("dropped")
	assert.NoError(t, closeFn())
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mm.log")

	l, closeFn, err := logging.Open(path, false)
	require.NoError(t, err)
	l.Info("first", "count", 1)
	l.Debug("hidden at info level")
	require.NoError(t, closeFn())

	l, closeFn, err = logging.Open(path, true)
	require.NoError(t, err)
	l.Debug("second")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "msg=first count=1")
	assert.NotContains(t, out, "hidden at info level")
	assert.Contains(t, out, "msg=second")
}

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, slog.LevelWarn)
	l.Info("quiet")
	l.Warn("loud", "locale", "ru")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "level=WARN msg=loud locale=ru")
}
